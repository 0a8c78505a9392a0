// Package argsum_api turns per-sample gene assembly reports into a single
// cross-sample summary matrix, with optional distance based clustering.
package argsum_api

// The fixed column order of a report file. Every '#' prefixed line in a
// report must contain exactly these names, in this order.
var reportColumns = []string{
	"gene",
	"flag",
	"reads",
	"cluster",
	"gene_len",
	"assembled",
	"pc_ident",
	"var_type",
	"var_effect",
	"new_aa",
	"gene_start",
	"gene_end",
	"gene_nt",
	"scaffold",
	"scaff_len",
	"scaff_start",
	"scaff_end",
	"scaff_nt",
	"read_depth",
	"alt_bases",
	"ref_alt_depth",
}

// An integer report column where the value '.' marks a missing value
type NullInt struct {
	// The parsed value, only meaningful when Valid is true
	Value int

	// Whether the column held a real value instead of '.'
	Valid bool
}

// A float report column where the value '.' marks a missing value
type NullFloat struct {
	// The parsed value, only meaningful when Valid is true
	Value float64

	// Whether the column held a real value instead of '.'
	Valid bool
}

// A struct representing one data line of a report file: a single candidate
// assembly of one reference gene in one sample
type ReportRecord struct {
	// The name of the reference gene the reads were assembled against
	Gene string

	// The decoded assembly status bitmask
	Flags Flag

	// The number of reads in the cluster
	Reads NullInt

	// The name of the cluster the gene belongs to
	Cluster string

	// The length of the reference gene in bases
	GeneLen NullInt

	// The number of reference bases covered by the assembly
	Assembled NullInt

	// The percent identity between the assembly and the reference gene
	PcIdent NullFloat

	// The variant description columns, carried along unparsed
	VarType   string
	VarEffect string
	NewAA     string

	// The coordinates of the hit on the reference gene
	GeneStart NullInt
	GeneEnd   NullInt

	// The reference nucleotide(s) at the variant position
	GeneNt string

	// The scaffold of the assembly carrying the hit
	Scaffold string

	// The length of that scaffold and the coordinates of the hit on it
	ScaffLen   NullInt
	ScaffStart NullInt
	ScaffEnd   NullInt

	// The scaffold nucleotide(s) at the variant position
	ScaffNt string

	// The read depth at the variant position
	ReadDepth NullInt

	// The non-reference bases and the reference/alternative depth strings,
	// carried along unparsed
	AltBases    string
	RefAltDepth string
}

// A struct representing one fully parsed report file
type SampleReport struct {
	// The path of the report file, used as the sample identifier
	Filename string

	// The records of each gene, in the order they appear in the file
	Genes map[string][]ReportRecord
}

// The cross-sample summary: one row per sample in input order, one column
// per gene in ascending name order
type SummaryMatrix struct {
	// The sorted union of the gene names seen in any sample
	Genes []string

	// One row per sample, each with exactly len(Genes) cells
	Rows []SampleRow
}

// One sample's row of the summary matrix
type SampleRow struct {
	// The sample identifier (the report filename)
	Name string

	// One summary code per gene, aligned to SummaryMatrix.Genes
	Cells []int
}

// The square, symmetric pairwise dissimilarity between the sample rows of a
// summary matrix
type DistanceMatrix struct {
	// The sample identifiers, in summary row order
	Names []string

	// Scores[i][j] counts the genes where exactly one of samples i and j
	// has a non-zero summary code. The diagonal is always zero.
	Scores [][]int
}

//
// Config structs
//

// The struct representing the options of one summary run. Every option can
// also be set in a YAML config file; values given on the command line win.
type Config struct {
	// The report files to summarise, in the order given on the command line
	Inputs []string

	// The path of the summary output file. A '.xls' or '.xlsx' suffix
	// selects a spreadsheet, anything else a tab separated file.
	Output string

	// The path of an optional file of report filenames, one per line
	Fofn string

	// Genes whose percent identity is at or below this threshold count as
	// not present
	MinID float64

	// Whether to drop all-zero rows and columns from the summary
	Filter bool

	// The prefix of the clustering output files. Clustering is skipped
	// when empty.
	Cluster string
}

// The YAML mirror of Config. Pointer fields distinguish absent keys from
// zero values when merging with the command line.
type fileConfig struct {
	Output  *string  `yaml:"output"`
	Fofn    *string  `yaml:"fofn"`
	MinID   *float64 `yaml:"min_id"`
	Filter  *bool    `yaml:"filter"`
	Cluster *string  `yaml:"cluster"`
}
