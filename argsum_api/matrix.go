package argsum_api

import (
	"sort"

	"github.com/pkg/errors"
)

// BuildMatrix turns the parsed reports into the summary matrix: one row per
// sample in report order, one column per gene seen in any sample, sorted by
// name. A gene absent from a sample scores 0.
func BuildMatrix(reports []*SampleReport, minID float64) (*SummaryMatrix, error) {
	geneSet := map[string]bool{}
	for _, report := range reports {
		for gene := range report.Genes {
			geneSet[gene] = true
		}
	}
	genes := make([]string, 0, len(geneSet))
	for gene := range geneSet {
		genes = append(genes, gene)
	}
	sort.Strings(genes)

	matrix := &SummaryMatrix{
		Genes: genes,
		Rows:  make([]SampleRow, 0, len(reports)),
	}
	for _, report := range reports {
		row := SampleRow{
			Name:  report.Filename,
			Cells: make([]int, len(genes)),
		}
		for i, gene := range genes {
			records, ok := report.Genes[gene]
			if !ok {
				continue
			}
			cell, err := Classify(records, minID)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: gene %s", report.Filename, gene)
			}
			row.Cells[i] = cell
		}
		matrix.Rows = append(matrix.Rows, row)
	}
	return matrix, nil
}

// FilterMatrix drops the sample rows whose cells are all zero and the gene
// columns that are zero in every sample. Both checks run against the
// unfiltered matrix, so filtering an already filtered matrix changes
// nothing. A disabled filter returns the matrix untouched.
func FilterMatrix(matrix *SummaryMatrix, enabled bool) *SummaryMatrix {
	if !enabled {
		return matrix
	}

	keepColumn := make([]bool, len(matrix.Genes))
	for _, row := range matrix.Rows {
		for i, cell := range row.Cells {
			if cell != 0 {
				keepColumn[i] = true
			}
		}
	}

	filtered := &SummaryMatrix{
		Genes: []string{},
		Rows:  []SampleRow{},
	}
	for i, gene := range matrix.Genes {
		if keepColumn[i] {
			filtered.Genes = append(filtered.Genes, gene)
		}
	}
	for _, row := range matrix.Rows {
		if allZero(row.Cells) {
			continue
		}
		kept := SampleRow{
			Name:  row.Name,
			Cells: make([]int, 0, len(filtered.Genes)),
		}
		for i, cell := range row.Cells {
			if keepColumn[i] {
				kept.Cells = append(kept.Cells, cell)
			}
		}
		filtered.Rows = append(filtered.Rows, kept)
	}
	return filtered
}

func allZero(cells []int) bool {
	for _, cell := range cells {
		if cell != 0 {
			return false
		}
	}
	return true
}
