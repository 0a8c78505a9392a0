package argsum_api

import (
	"bytes"
	"strconv"
	"strings"
)

// DistanceBetween counts the positions where exactly one of the two rows
// holds a zero. Cells that differ but are both non-zero do not count: the
// score measures presence versus absence, not the summary code itself.
func DistanceBetween(a, b []int) int {
	distance := 0
	for i := range a {
		if a[i] != b[i] && (a[i] == 0 || b[i] == 0) {
			distance++
		}
	}
	return distance
}

// ScoreDistances computes the pairwise distance matrix between all sample
// rows. Clustering needs at least two samples and at least one gene.
func ScoreDistances(matrix *SummaryMatrix) (*DistanceMatrix, error) {
	if len(matrix.Rows) < 2 {
		return nil, &InsufficientDataError{Reason: "only one sample present"}
	}
	if len(matrix.Genes) == 0 {
		return nil, &InsufficientDataError{Reason: "no genes present in the output"}
	}

	distances := &DistanceMatrix{
		Names:  make([]string, len(matrix.Rows)),
		Scores: make([][]int, len(matrix.Rows)),
	}
	for i, row := range matrix.Rows {
		distances.Names[i] = row.Name
		distances.Scores[i] = make([]int, len(matrix.Rows))
	}
	for i := range matrix.Rows {
		for j := i + 1; j < len(matrix.Rows); j++ {
			score := DistanceBetween(matrix.Rows[i].Cells, matrix.Rows[j].Cells)
			distances.Scores[i][j] = score
			distances.Scores[j][i] = score
		}
	}
	return distances, nil
}

// WriteDistanceMatrix writes the labelled distance table read by the tree
// building script: a header with every sample but the first, then one line
// per sample holding its name and its scores against every sample after
// the first.
func WriteDistanceMatrix(distances *DistanceMatrix, outfile string) error {
	var buffer bytes.Buffer
	buffer.WriteString(strings.Join(distances.Names[1:], "\t"))
	buffer.WriteByte('\n')
	for i, name := range distances.Names {
		fields := []string{name}
		for j := 1; j < len(distances.Names); j++ {
			fields = append(fields, strconv.Itoa(distances.Scores[i][j]))
		}
		buffer.WriteString(strings.Join(fields, "\t"))
		buffer.WriteByte('\n')
	}
	return writeFileAtomic(outfile, buffer.Bytes())
}
