package argsum_api

import (
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// A Summary is one summarising run, from collecting the input reports to
// writing the output files
type Summary struct {
	config *Config
	logger *log.Logger
}

// NewSummary creates a run for the given options
func NewSummary(config *Config) *Summary {
	return &Summary{
		config: config,
		logger: log.New(os.Stderr, "", 0),
	}
}

// Run executes the whole pipeline: collect and check the input files, parse
// them, build and filter the summary matrix, write it, and when clustering
// was requested write the distance matrix, the tree and the heatmap file.
func (summary *Summary) Run() error {
	filenames, err := summary.collectFilenames()
	if err != nil {
		return err
	}
	if err := checkFilesExist(filenames); err != nil {
		return err
	}

	reports, err := LoadReports(filenames)
	if err != nil {
		return err
	}
	summary.logger.Printf("Parsed %d report file(s)", len(reports))

	matrix, err := BuildMatrix(reports, summary.config.MinID)
	if err != nil {
		return err
	}
	matrix = FilterMatrix(matrix, summary.config.Filter)
	summary.logger.Printf("Summary has %d sample(s) and %d gene(s)", len(matrix.Rows), len(matrix.Genes))

	if err := summary.writeSummary(matrix); err != nil {
		return err
	}

	if summary.config.Cluster == "" {
		return nil
	}
	return summary.writeClusterFiles(matrix)
}

// collectFilenames merges the files given as arguments with the contents of
// the fofn, keeping the argument order
func (summary *Summary) collectFilenames() ([]string, error) {
	filenames := append([]string{}, summary.config.Inputs...)
	if summary.config.Fofn != "" {
		fromFofn, err := loadFofn(summary.config.Fofn)
		if err != nil {
			return nil, err
		}
		filenames = append(filenames, fromFofn...)
	}
	return filenames, nil
}

// writeSummary writes the matrix to the configured output file, as a
// spreadsheet when the filename asks for one
func (summary *Summary) writeSummary(matrix *SummaryMatrix) error {
	outfile := summary.config.Output
	if strings.HasSuffix(outfile, ".xls") || strings.HasSuffix(outfile, ".xlsx") {
		if err := WriteXLSX(matrix, outfile); err != nil {
			return errors.Wrap(err, "failed to write the spreadsheet summary")
		}
	} else if err := WriteTSV(matrix, outfile); err != nil {
		return errors.Wrap(err, "failed to write the summary")
	}
	summary.logger.Printf("Wrote %s", outfile)
	return nil
}

// writeClusterFiles derives the distance matrix from the summary and writes
// the three clustering outputs: the matrix itself, the newick tree made
// from it, and the heatmap file matching the tree
func (summary *Summary) writeClusterFiles(matrix *SummaryMatrix) error {
	distances, err := ScoreDistances(matrix)
	if err != nil {
		return err
	}

	distanceFile := summary.config.Cluster + ".distance_matrix"
	treeFile := summary.config.Cluster + ".tre"
	heatmapFile := summary.config.Cluster + ".heatmap.csv"

	if err := WriteDistanceMatrix(distances, distanceFile); err != nil {
		return errors.Wrap(err, "failed to write the distance matrix")
	}
	if err := TreeFromDistanceMatrix(distanceFile, treeFile); err != nil {
		return err
	}
	if err := WriteHeatmapCSV(matrix, heatmapFile); err != nil {
		return errors.Wrap(err, "failed to write the heatmap file")
	}
	summary.logger.Printf("Wrote %s, %s and %s", distanceFile, treeFile, heatmapFile)
	return nil
}
