package argsum_api

import (
	"os"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

// SummaryFlags returns the command line flags of a summary run
func SummaryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "The location of the output file. A '.xls' or '.xlsx' suffix writes a spreadsheet instead of a tab separated file",
			Category: "Required",
		},
		&cli.StringFlag{
			Name:     "fofn",
			Aliases:  []string{"f"},
			Usage:    "A file of report filenames to summarise, one per line, used in addition to the files given as arguments",
			Category: "Optional",
		},
		&cli.Float64Flag{
			Name:     "min-id",
			Usage:    "The minimum percent identity to count a gene as present. Genes at or below this value score 0",
			Value:    90,
			Category: "Optional",
		},
		&cli.BoolFlag{
			Name:     "no-filter",
			Usage:    "Keep rows and columns whose values are all zero instead of dropping them",
			Category: "Optional",
		},
		&cli.StringFlag{
			Name:     "cluster",
			Aliases:  []string{"t"},
			Usage:    "The prefix of the clustering files. Writes PREFIX.distance_matrix, PREFIX.tre and PREFIX.heatmap.csv and needs R with the ape package",
			Category: "Optional",
		},
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "Configuration file (YAML) holding defaults for the other options",
			Category: "Optional",
		},
	}
}

// ReadConfig merges the command line flags with the optional configuration
// file and validates the result. Values given on the command line win.
func ReadConfig(Cctx *cli.Context) (*Config, error) {
	config := &Config{
		Inputs:  Cctx.Args().Slice(),
		Output:  Cctx.String("output"),
		Fofn:    Cctx.String("fofn"),
		MinID:   Cctx.Float64("min-id"),
		Filter:  !Cctx.Bool("no-filter"),
		Cluster: Cctx.String("cluster"),
	}

	if path := Cctx.String("config"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open the config file")
		}
		var file fileConfig
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, errors.Wrap(err, "failed to parse the config file")
		}
		config.applyFile(Cctx, &file)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Apply every config file value whose flag was not set on the command line
func (config *Config) applyFile(Cctx *cli.Context, file *fileConfig) {
	if file.Output != nil && !Cctx.IsSet("output") {
		config.Output = *file.Output
	}
	if file.Fofn != nil && !Cctx.IsSet("fofn") {
		config.Fofn = *file.Fofn
	}
	if file.MinID != nil && !Cctx.IsSet("min-id") {
		config.MinID = *file.MinID
	}
	if file.Filter != nil && !Cctx.IsSet("no-filter") {
		config.Filter = *file.Filter
	}
	if file.Cluster != nil && !Cctx.IsSet("cluster") {
		config.Cluster = *file.Cluster
	}
}

func (config *Config) validate() error {
	if config.Output == "" {
		return errors.New("an output file must be supplied with --output or the config file")
	}
	if len(config.Inputs) == 0 && config.Fofn == "" {
		return ErrNoInput
	}
	return nil
}
