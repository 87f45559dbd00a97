// Package dataset holds the tabular data model shared by readers and the analysis layer
package dataset

import (
	"math"
	"strconv"
	"strings"

	"tabstat/domain/core"
)

// Table is a rectangular grid of string cells with a header row.
// INVARIANTS:
// - every row has exactly len(Headers) cells (readers pad short rows with "")
// - header names are trimmed; duplicates resolve to the first occurrence
type Table struct {
	Name    string     `json:"name,omitempty"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// NewTable builds a table, trimming headers and padding or truncating rows to the header width
func NewTable(name string, headers []string, rows [][]string) *Table {
	t := &Table{Name: name, Headers: make([]string, len(headers))}
	for i, h := range headers {
		t.Headers[i] = strings.TrimSpace(h)
	}
	t.Rows = make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(headers))
		for j := 0; j < len(cells) && j < len(row); j++ {
			cells[j] = strings.TrimSpace(row[j])
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns
func (t *Table) NumCols() int {
	return len(t.Headers)
}

// ColumnIndex resolves a header name to its position
func (t *Table) ColumnIndex(name string) (int, error) {
	name = strings.TrimSpace(name)
	for i, h := range t.Headers {
		if h == name {
			return i, nil
		}
	}
	return -1, core.NewColumnNotFoundError(name)
}

// Column returns the raw cells of a column
func (t *Table) Column(name string) ([]string, error) {
	idx, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// ColumnAsFloats converts a column to numbers; empty and non-numeric cells become NaN
func (t *Table) ColumnAsFloats(name string) ([]float64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for i, cell := range cells {
		out[i] = ParseCell(cell)
	}
	return out, nil
}

// IsNumericColumn reports whether every non-empty cell parses as a number and
// at least one does
func (t *Table) IsNumericColumn(name string) bool {
	cells, err := t.Column(name)
	if err != nil {
		return false
	}
	seen := false
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		if _, ok := parseNumber(cell); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// NumericColumns returns the headers of every numeric column in table order
func (t *Table) NumericColumns() []string {
	var out []string
	for _, h := range t.Headers {
		if t.IsNumericColumn(h) {
			out = append(out, h)
		}
	}
	return out
}

// ParseCell converts one cell, returning NaN when it is empty or not a number
func ParseCell(cell string) float64 {
	if v, ok := parseNumber(cell); ok {
		return v
	}
	return math.NaN()
}

func parseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
