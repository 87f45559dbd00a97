package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"tabstat/domain/stats"
	"tabstat/internal/analysis"
)

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func formatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func printSummaryText(w io.Writer, r stats.ColumnReport) error {
	s := r.Summary
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Column\t%s\n", r.Column)
	fmt.Fprintf(tw, "Count\t%d\n", s.Count)
	if s.IsEmpty() {
		fmt.Fprintln(tw, "\tno numeric values")
		return tw.Flush()
	}
	rows := []struct {
		label string
		value float64
	}{
		{"Sum", s.Sum},
		{"Mean", s.Mean},
		{"Median", s.Median},
		{"Mode", s.Mode},
		{"Variance", s.Variance},
		{"Std. deviation", s.StdDev},
		{"Min", s.Min},
		{"Q1", s.Q1},
		{"Q3", s.Q3},
		{"Max", s.Max},
		{"Range", s.Range},
		{"IQR", s.IQR},
		{"Skewness", s.Skewness},
		{"Kurtosis", s.Kurtosis},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.label, formatNumber(row.value))
	}
	fmt.Fprintf(tw, "Shape\t%s, %s\n", r.Interpretation.Skewness, r.Interpretation.Kurtosis)
	return tw.Flush()
}

func printForecastText(w io.Writer, column string, fc *stats.Forecast) error {
	if !fc.IsValid {
		_, err := fmt.Fprintf(w, "Forecast of %s (%s) failed: %s\n", column, fc.Method, fc.ErrorMessage)
		return err
	}
	fmt.Fprintf(w, "Forecast of %s (%s)\n", column, fc.Method)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Period\tPredicted\tLower 95%\tUpper 95%")
	for i, p := range fc.Predicted {
		lower, upper := "n/a", "n/a"
		if i < len(fc.LowerBound) && i < len(fc.UpperBound) {
			lower, upper = formatNumber(fc.LowerBound[i]), formatNumber(fc.UpperBound[i])
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, formatNumber(p), lower, upper)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "In-sample MSE: %s\n", formatNumber(fc.ErrorMetric))
	return err
}

func printGroupsText(w io.Writer, agg analysis.Aggregation, groups []stats.GroupResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Key\tRows\t%s\n", agg)
	for _, g := range groups {
		key := g.Key
		if key == "" {
			key = "(blank)"
		}
		value := formatNumber(g.Value)
		if !g.Valid {
			value = "n/a (" + g.ErrorMessage + ")"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", key, g.Count, value)
	}
	return tw.Flush()
}

// printMarkdown renders a one-column report with the shared report renderer
func (s *cliState) printMarkdown(w io.Writer, source string, r stats.ColumnReport) error {
	rep := stats.NewReport(source)
	rep.Columns = []stats.ColumnReport{r}
	_, err := w.Write(s.renderer().Markdown(rep))
	return err
}
