// Package loader reads listing lines out of uploaded files.
package loader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Format identifies a supported input file type.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatText Format = "text"
)

// ErrUnsupportedFormat is returned for file extensions no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// maxLineBytes bounds a single line of a text upload.
const maxLineBytes = 1 << 20

// FormatFor picks the reader for filename by extension.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".txt", ".text", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ReadFile opens path and reads it with the reader matching its extension.
func ReadFile(path string) ([]string, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path from trusted CLI argument
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return Read(f, format)
}

// Read returns the non-empty listing lines in r.
func Read(r io.Reader, format Format) ([]string, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	case FormatText:
		return ReadText(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadCSV returns the first column of every record. There is no header row.
func ReadCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var lines []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if len(record) == 0 {
			continue
		}
		if line := strings.TrimSpace(record[0]); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// ReadText returns every non-blank line.
func ReadText(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}
	return lines, nil
}

// ReadXLSX reads the first sheet of a workbook. The first row is a header;
// lines come from the first column holding any data below it.
func ReadXLSX(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close() //nolint:errcheck // in-memory workbook

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}
	data := rows[1:]

	col := firstDataColumn(data)
	if col < 0 {
		return nil, nil
	}

	var lines []string
	for _, row := range data {
		if col >= len(row) {
			continue
		}
		if line := strings.TrimSpace(row[col]); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func firstDataColumn(rows [][]string) int {
	best := -1
	for _, row := range rows {
		for i, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if best < 0 || i < best {
				best = i
			}
			break
		}
	}
	return best
}

var fileDateRegex = regexp.MustCompile(`(\d{1,2})_(\d{1,2})_(\d{2})`)

// FileDate extracts the MM_DD_YY date embedded in a filename such as
// "Data Entry 6_18_25.xlsx". Two-digit years are in 2000-2099.
func FileDate(filename string) (time.Time, bool) {
	m := fileDateRegex.FindStringSubmatch(filepath.Base(filename))
	if m == nil {
		return time.Time{}, false
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	d := time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject dates time.Date normalized, like 02_30_24.
	if d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
