package argsum_api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The decoded bitmask of the 'flag' report column. Every bit records one
// fact about how a gene assembled in one sample.
type Flag uint

const (
	// The gene was assembled from the reads
	GeneAssembled Flag = 1 << iota

	// The whole assembly of the gene lies in one contig
	GeneAssembledIntoOneContig

	// Part of the gene region assembled more than once
	GeneRegionAssembledTwice

	// The assembly contains a complete open reading frame
	CompleteORF

	// Only one contig matches the gene
	UniqueContig

	// The scaffolding graph around the gene looks wrong
	ScaffoldGraphBad

	// The assembly failed altogether
	AssemblyFail

	// The variants suggest the assembly collapsed a repeat
	VariantsSuggestCollapsedRepeat

	// The gene was hit on both strands
	HitBothStrands

	// The assembly carries nonsynonymous variants against the reference
	HasNonsynonymousVariants
)

// The report column name of every known bit, lowest bit first
var flagNames = []string{
	"gene_assembled",
	"gene_assembled_into_one_contig",
	"gene_region_assembled_twice",
	"complete_orf",
	"unique_contig",
	"scaffold_graph_bad",
	"assembly_fail",
	"variants_suggest_collapsed_repeat",
	"hit_both_strands",
	"has_nonsynonymous_variants",
}

// ParseFlag decodes the decimal value of the 'flag' report column
func ParseFlag(field string) (Flag, error) {
	value, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, errors.Errorf("invalid flag value %q", field)
	}
	return Flag(value), nil
}

// Has reports whether all bits of query are set
func (flag Flag) Has(query Flag) bool {
	return flag&query == query
}

// setNames returns the name of every set bit, lowest bit first. Bits beyond
// the known enumeration are reported as unknown_bit_<n>.
func (flag Flag) setNames() []string {
	names := []string{}
	for bit := 0; flag>>uint(bit) != 0; bit++ {
		if flag&(1<<uint(bit)) == 0 {
			continue
		}
		if bit < len(flagNames) {
			names = append(names, flagNames[bit])
		} else {
			names = append(names, fmt.Sprintf("unknown_bit_%d", bit))
		}
	}
	return names
}

// String returns the comma separated column names of every set bit
func (flag Flag) String() string {
	return strings.Join(flag.setNames(), ",")
}

// HumanNames returns a title cased label for every set bit, e.g.
// "Gene Assembled Into One Contig"
func (flag Flag) HumanNames() []string {
	names := flag.setNames()
	for i, name := range names {
		names[i] = cases.Title(language.English, cases.Compact).String(strings.ReplaceAll(name, "_", " "))
	}
	return names
}

// ExpandFlagCommand returns the CLI command that decodes raw 'flag' column
// values into their human readable meanings, one line per value.
func ExpandFlagCommand() *cli.Command {
	return &cli.Command{
		Name:      "expandflag",
		Usage:     "Decode the integer 'flag' column of a report into its meanings",
		ArgsUsage: "flag [flag...]",
		Action: func(Cctx *cli.Context) error {
			if Cctx.NArg() == 0 {
				return errors.New("no flag values given to expand")
			}
			for _, arg := range Cctx.Args().Slice() {
				flag, err := ParseFlag(arg)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", arg, strings.Join(flag.HumanNames(), ", "))
			}
			return nil
		},
	}
}
