// Package traindata loads labeled asset rows from CSV. Expected shape is
// two columns, asset name then category, UTF-8, with an optional header row.
package traindata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoRows is returned when the source contains no usable rows. The
	// classifier cannot be constructed without a populated category set.
	ErrNoRows = errors.New("training data contains no rows")
	// ErrMalformedRow is returned for a row without both columns.
	ErrMalformedRow = errors.New("training row is malformed")
)

// Row is one labeled training example. Immutable once loaded.
type Row struct {
	AssetName string
	Category  string
}

// headerNames are column titles recognized as a header row.
var headerNames = map[string]bool{
	"資產名稱":       true,
	"資產類別":       true,
	"asset_name": true,
	"category":   true,
}

// Load reads labeled rows from r. The first row is skipped when it looks
// like a header. Rows with missing or blank columns fail the load rather
// than silently shrinking the training set.
func Load(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Row
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading training data: %w", err)
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}

		if len(record) < 2 {
			return nil, fmt.Errorf("%w: line %d has %d columns", ErrMalformedRow, line, len(record))
		}
		name := strings.TrimSpace(record[0])
		category := strings.TrimSpace(record[1])
		if name == "" || category == "" {
			return nil, fmt.Errorf("%w: line %d has a blank column", ErrMalformedRow, line)
		}
		rows = append(rows, Row{AssetName: name, Category: category})
	}

	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// LoadFile reads labeled rows from a CSV file.
func LoadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening training data: %w", err)
	}
	defer f.Close()

	rows, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// isHeader reports whether the record looks like a column-title row.
func isHeader(record []string) bool {
	for _, field := range record {
		if headerNames[strings.ToLower(strings.TrimSpace(field))] {
			return true
		}
	}
	return false
}

// Categories returns the distinct categories in first-appearance order.
func Categories(rows []Row) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range rows {
		if _, ok := seen[row.Category]; ok {
			continue
		}
		seen[row.Category] = struct{}{}
		out = append(out, row.Category)
	}
	return out
}
