package excel

import (
	"context"
	"fmt"
	"math"

	"tabstat/domain/stats"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	forecastSheet = "Forecast"
	groupSheet    = "Groups"
)

var summaryHeaders = []interface{}{
	"Column", "Count", "Sum", "Mean", "Median", "Mode", "Variance", "StdDev",
	"Min", "Max", "Range", "Q1", "Q3", "IQR", "Skewness", "Kurtosis",
}

// SummaryExporter writes a report to an XLSX workbook: a Summary sheet with
// one row per column, plus Forecast and Groups sheets when the report has them
type SummaryExporter struct {
	filePath string
}

// NewSummaryExporter creates an exporter writing to filePath
func NewSummaryExporter(filePath string) *SummaryExporter {
	return &SummaryExporter{filePath: filePath}
}

// WriteReport builds the workbook and saves it, replacing any existing file
func (e *SummaryExporter) WriteReport(ctx context.Context, report *stats.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if err := e.writeSummary(f, report); err != nil {
		return err
	}
	if err := e.writeForecasts(f, report); err != nil {
		return err
	}
	if err := e.writeGroups(f, report); err != nil {
		return err
	}

	if err := f.SaveAs(e.filePath); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", e.filePath, err)
	}
	logger.Info("Exported %d columns to %s", len(report.Columns), e.filePath)
	return nil
}

func (e *SummaryExporter) writeSummary(f *excelize.File, report *stats.Report) error {
	rows := [][]interface{}{summaryHeaders}
	for _, col := range report.Columns {
		s := col.Summary
		rows = append(rows, []interface{}{
			col.Column, s.Count, s.Sum, s.Mean, s.Median, s.Mode, s.Variance, s.StdDev,
			s.Min, s.Max, s.Range, s.Q1, s.Q3, s.IQR, s.Skewness, s.Kurtosis,
		})
	}
	return writeRows(f, summarySheet, rows)
}

func (e *SummaryExporter) writeForecasts(f *excelize.File, report *stats.Report) error {
	rows := [][]interface{}{{"Column", "Method", "Period", "Predicted", "Lower", "Upper", "MSE"}}
	for _, col := range report.Columns {
		fc := col.Forecast
		if fc == nil || !fc.IsValid {
			continue
		}
		for i, p := range fc.Predicted {
			row := []interface{}{col.Column, fc.Method.String(), i + 1, p, nil, nil, cellValue(fc.ErrorMetric)}
			if i < len(fc.LowerBound) && i < len(fc.UpperBound) {
				row[4], row[5] = fc.LowerBound[i], fc.UpperBound[i]
			}
			rows = append(rows, row)
		}
	}
	if len(rows) == 1 {
		return nil
	}
	if _, err := f.NewSheet(forecastSheet); err != nil {
		return fmt.Errorf("failed to create forecast sheet: %w", err)
	}
	return writeRows(f, forecastSheet, rows)
}

func (e *SummaryExporter) writeGroups(f *excelize.File, report *stats.Report) error {
	if len(report.Groups) == 0 {
		return nil
	}
	rows := [][]interface{}{{"Group", "Count", report.GroupBy, "Note"}}
	for _, g := range report.Groups {
		var value interface{}
		if g.Valid {
			value = g.Value
		}
		rows = append(rows, []interface{}{g.Key, g.Count, value, g.ErrorMessage})
	}
	if _, err := f.NewSheet(groupSheet); err != nil {
		return fmt.Errorf("failed to create group sheet: %w", err)
	}
	return writeRows(f, groupSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// cellValue leaves non-finite numbers blank since workbooks cannot store them
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
