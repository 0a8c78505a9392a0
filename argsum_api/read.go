package argsum_api

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// LoadReports parses every report file concurrently. The parsed reports
// keep the order of filenames; the first failing file aborts the load.
func LoadReports(filenames []string) ([]*SampleReport, error) {
	reports := make([]*SampleReport, len(filenames))
	var group errgroup.Group
	for i, filename := range filenames {
		i, filename := i, filename
		group.Go(func() error {
			report, err := ReadReport(filename)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// ReadReport parses one report file, grouping its records by gene name.
// Files ending in .gz are read as bgzip.
func ReadReport(filename string) (*SampleReport, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	report := NewSampleReport(filename)
	if strings.HasSuffix(filename, ".gz") {
		err = report.readBgzip(file)
	} else {
		err = report.readPlain(file)
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func NewSampleReport(filename string) *SampleReport {
	return &SampleReport{
		Filename: filename,
		Genes:    map[string][]ReportRecord{},
	}
}

func (report *SampleReport) readPlain(input *os.File) error {
	scanner := bufio.NewScanner(input)
	const maxCapacity = 8 * 1000000 // 8 MB
	scanner.Buffer(make([]byte, maxCapacity), maxCapacity)
	line := 0
	for scanner.Scan() {
		line++
		if err := report.parse(scanner.Text(), line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (report *SampleReport) readBgzip(input *os.File) error {
	bgReader, err := bgzf.NewReader(input, 1)
	if err != nil {
		return err
	}
	defer bgReader.Close()

	line := 0
	for {
		b, err := readLine(bgReader)
		if err != nil {
			if err == io.EOF {
				// A final line without a trailing newline still counts
				if len(b) > 0 {
					line++
					return report.parse(string(bytes.TrimRight(b, "\r\n")), line)
				}
				return nil
			}
			return err
		}
		line++
		if err := report.parse(string(bytes.TrimRight(b, "\r\n")), line); err != nil {
			return err
		}
	}
}

// readLine reads one newline terminated line from a bgzip reader
func readLine(r *bgzf.Reader) ([]byte, error) {
	var (
		data []byte
		b    byte
		err  error
	)
	for {
		b, err = r.ReadByte()
		if err != nil {
			break
		}
		data = append(data, b)
		if b == '\n' {
			break
		}
	}
	return data, err
}

func (report *SampleReport) parse(line string, lineNumber int) error {
	if strings.HasPrefix(line, "#") {
		if !slices.Equal(strings.Split(line[1:], "\t"), reportColumns) {
			return &FormatError{
				File:   report.Filename,
				Line:   lineNumber,
				Reason: fmt.Sprintf("unexpected header %q", line),
			}
		}
		return nil
	}

	fields := strings.Split(line, "\t")
	if len(fields) != len(reportColumns) {
		return &FormatError{
			File:   report.Filename,
			Line:   lineNumber,
			Reason: fmt.Sprintf("expected %d columns, got %d", len(reportColumns), len(fields)),
		}
	}

	record, err := parseRecord(fields)
	if err != nil {
		return &FormatError{File: report.Filename, Line: lineNumber, Reason: err.Error()}
	}
	report.Genes[record.Gene] = append(report.Genes[record.Gene], record)
	return nil
}

func parseRecord(fields []string) (ReportRecord, error) {
	record := ReportRecord{
		Gene:        fields[0],
		Cluster:     fields[3],
		VarType:     fields[7],
		VarEffect:   fields[8],
		NewAA:       fields[9],
		GeneNt:      fields[12],
		Scaffold:    fields[13],
		ScaffNt:     fields[17],
		AltBases:    fields[19],
		RefAltDepth: fields[20],
	}
	if record.Gene == "" {
		return record, errors.New("empty gene name")
	}

	var err error
	if record.Flags, err = ParseFlag(fields[1]); err != nil {
		return record, err
	}

	intColumns := []struct {
		index  int
		target *NullInt
	}{
		{2, &record.Reads},
		{4, &record.GeneLen},
		{5, &record.Assembled},
		{10, &record.GeneStart},
		{11, &record.GeneEnd},
		{14, &record.ScaffLen},
		{15, &record.ScaffStart},
		{16, &record.ScaffEnd},
		{18, &record.ReadDepth},
	}
	for _, column := range intColumns {
		if *column.target, err = parseNullInt(fields[column.index]); err != nil {
			return record, errors.Wrapf(err, "column %s", reportColumns[column.index])
		}
	}

	if record.PcIdent, err = parseNullFloat(fields[6]); err != nil {
		return record, errors.Wrap(err, "column pc_ident")
	}
	return record, nil
}

// parseNullInt coerces an integer report column, accepting only '.' as a
// missing value
func parseNullInt(field string) (NullInt, error) {
	if field == "." {
		return NullInt{}, nil
	}
	value, err := strconv.Atoi(field)
	if err != nil {
		return NullInt{}, errors.Errorf("invalid integer %q", field)
	}
	return NullInt{Value: value, Valid: true}, nil
}

// parseNullFloat coerces a float report column, accepting only '.' as a
// missing value
func parseNullFloat(field string) (NullFloat, error) {
	if field == "." {
		return NullFloat{}, nil
	}
	value, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return NullFloat{}, errors.Errorf("invalid float %q", field)
	}
	return NullFloat{Value: value, Valid: true}, nil
}

// loadFofn reads a file of report filenames, one per line, skipping blank
// lines
func loadFofn(fofn string) ([]string, error) {
	file, err := os.Open(fofn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the fofn")
	}
	defer file.Close()

	filenames := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		filename := strings.TrimSpace(scanner.Text())
		if filename != "" {
			filenames = append(filenames, filename)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read the fofn")
	}
	return filenames, nil
}

// checkFilesExist verifies every input report exists before any parsing
// starts, reporting the first missing path
func checkFilesExist(filenames []string) error {
	for _, filename := range filenames {
		if _, err := os.Stat(filename); err != nil {
			if os.IsNotExist(err) {
				return errors.Errorf("file not found: %q. Cannot continue", filename)
			}
			return errors.Wrap(err, "failed to check the input reports")
		}
	}
	return nil
}
