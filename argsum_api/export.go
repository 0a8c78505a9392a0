package argsum_api

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// The name of the worksheet in spreadsheet output
const sheetName = "ARIBA_summary"

// WriteTSV writes the summary matrix as a tab separated file with a '#'
// prefixed header line
func WriteTSV(matrix *SummaryMatrix, outfile string) error {
	var buffer bytes.Buffer
	buffer.WriteByte('#')
	buffer.WriteString(strings.Join(append([]string{"filename"}, matrix.Genes...), "\t"))
	buffer.WriteByte('\n')
	for _, row := range matrix.Rows {
		buffer.WriteString(row.Name)
		for _, cell := range row.Cells {
			buffer.WriteByte('\t')
			buffer.WriteString(strconv.Itoa(cell))
		}
		buffer.WriteByte('\n')
	}
	return writeFileAtomic(outfile, buffer.Bytes())
}

// WriteHeatmapCSV writes the matrix for the interactive heatmap viewer,
// which wants a comma separated file whose first header column is called
// "name" and whose sample names match the leaves of the tree file.
func WriteHeatmapCSV(matrix *SummaryMatrix, outfile string) error {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(append([]string{"name"}, matrix.Genes...)); err != nil {
		return err
	}
	for _, row := range matrix.Rows {
		record := make([]string, 0, len(row.Cells)+1)
		record = append(record, row.Name)
		for _, cell := range row.Cells {
			record = append(record, strconv.Itoa(cell))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return writeFileAtomic(outfile, buffer.Bytes())
}

// WriteXLSX writes the matrix to a single spreadsheet worksheet with the
// same layout as the TSV output. The summary codes stay numeric cells.
func WriteXLSX(matrix *SummaryMatrix, outfile string) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(matrix.Genes)+1)
	header = append(header, "filename")
	for _, gene := range matrix.Genes {
		header = append(header, gene)
	}
	if err := book.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, row := range matrix.Rows {
		cells := make([]interface{}, 0, len(row.Cells)+1)
		cells = append(cells, row.Name)
		for _, cell := range row.Cells {
			cells = append(cells, cell)
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := book.SetSheetRow(sheetName, start, &cells); err != nil {
			return err
		}
	}

	var buffer bytes.Buffer
	if err := book.Write(&buffer); err != nil {
		return err
	}
	return writeFileAtomic(outfile, buffer.Bytes())
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so a failing run never leaves a half written output
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
