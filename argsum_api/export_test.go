package argsum_api

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func exportMatrix() *SummaryMatrix {
	return &SummaryMatrix{
		Genes: []string{"geneA", "geneB"},
		Rows: []SampleRow{
			{Name: "sample1.tsv", Cells: []int{4, 0}},
			{Name: "sample2.tsv", Cells: []int{0, 2}},
		},
	}
}

func TestWriteTSV(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "summary.tsv")
	if err := WriteTSV(exportMatrix(), outfile); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	expect := "#filename\tgeneA\tgeneB\n" +
		"sample1.tsv\t4\t0\n" +
		"sample2.tsv\t0\t2\n"
	if string(content) != expect {
		t.Errorf("expected %q, got %q", expect, string(content))
	}
}

func TestWriteTSVHeaderOnly(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "summary.tsv")
	matrix := &SummaryMatrix{Genes: []string{}, Rows: []SampleRow{}}
	if err := WriteTSV(matrix, outfile); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "#filename\n" {
		t.Errorf("expected %q, got %q", "#filename\n", string(content))
	}
}

func TestWriteHeatmapCSV(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "summary.heatmap.csv")
	if err := WriteHeatmapCSV(exportMatrix(), outfile); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	expect := "name,geneA,geneB\n" +
		"sample1.tsv,4,0\n" +
		"sample2.tsv,0,2\n"
	if string(content) != expect {
		t.Errorf("expected %q, got %q", expect, string(content))
	}
}

func TestWriteXLSX(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "summary.xlsx")
	if err := WriteXLSX(exportMatrix(), outfile); err != nil {
		t.Fatal(err)
	}

	book, err := excelize.OpenFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	defer book.Close()

	if sheets := book.GetSheetList(); !reflect.DeepEqual(sheets, []string{sheetName}) {
		t.Errorf("expected the single sheet %q, got %v", sheetName, sheets)
	}

	rows, err := book.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}
	expect := [][]string{
		{"filename", "geneA", "geneB"},
		{"sample1.tsv", "4", "0"},
		{"sample2.tsv", "0", "2"},
	}
	if !reflect.DeepEqual(rows, expect) {
		t.Errorf("expected %v, got %v", expect, rows)
	}
}

func TestWriteTSVOverwrites(t *testing.T) {
	outfile := filepath.Join(t.TempDir(), "summary.tsv")
	if err := os.WriteFile(outfile, []byte("stale content\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := WriteTSV(exportMatrix(), outfile); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) == "stale content\n" {
		t.Error("the old output file was not replaced")
	}
}
