package testkit

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Table is an in-memory fixture: headers plus column-major float cells.
// NaN cells are written as empty strings.
type Table struct {
	Headers []string
	Columns [][]float64
}

func (t Table) rows() [][]string {
	rows := [][]string{append([]string(nil), t.Headers...)}
	n := 0
	for _, col := range t.Columns {
		if len(col) > n {
			n = len(col)
		}
	}
	for i := 0; i < n; i++ {
		row := make([]string, len(t.Columns))
		for j, col := range t.Columns {
			if i < len(col) && !math.IsNaN(col[i]) {
				row[j] = strconv.FormatFloat(col[i], 'g', -1, 64)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteCSV writes the table to path
func (t Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV fixture: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(t.rows()); err != nil {
		return fmt.Errorf("failed to write CSV fixture: %w", err)
	}
	return nil
}

// WriteXLSX writes the table to the given sheet of a new workbook at path
func (t Table) WriteXLSX(path, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	for r, row := range t.rows() {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			var cellValue interface{} = value
			if r > 0 {
				if num, err := strconv.ParseFloat(value, 64); err == nil {
					cellValue = num
				}
			}
			if err := f.SetCellValue(sheet, cell, cellValue); err != nil {
				return fmt.Errorf("failed to set %s: %w", cell, err)
			}
		}
	}
	return f.SaveAs(path)
}
