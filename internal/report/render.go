// Package report renders analysis reports as Markdown and HTML documents
package report

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tabstat/domain/stats"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Renderer formats numbers with a fixed number of decimals
type Renderer struct {
	precision int
}

// NewRenderer creates a renderer; negative precision is treated as 0
func NewRenderer(precision int) *Renderer {
	if precision < 0 {
		precision = 0
	}
	return &Renderer{precision: precision}
}

type statRow struct {
	label string
	value func(stats.Summary) float64
}

var statRows = []statRow{
	{"Sum", func(s stats.Summary) float64 { return s.Sum }},
	{"Mean", func(s stats.Summary) float64 { return s.Mean }},
	{"Median", func(s stats.Summary) float64 { return s.Median }},
	{"Mode", func(s stats.Summary) float64 { return s.Mode }},
	{"Variance", func(s stats.Summary) float64 { return s.Variance }},
	{"Std. deviation", func(s stats.Summary) float64 { return s.StdDev }},
	{"Min", func(s stats.Summary) float64 { return s.Min }},
	{"Q1", func(s stats.Summary) float64 { return s.Q1 }},
	{"Q3", func(s stats.Summary) float64 { return s.Q3 }},
	{"Max", func(s stats.Summary) float64 { return s.Max }},
	{"Range", func(s stats.Summary) float64 { return s.Range }},
	{"IQR", func(s stats.Summary) float64 { return s.IQR }},
	{"Skewness", func(s stats.Summary) float64 { return s.Skewness }},
	{"Kurtosis", func(s stats.Summary) float64 { return s.Kurtosis }},
}

// Markdown renders the report with one table column per analyzed column
func (r *Renderer) Markdown(report *stats.Report) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# Analysis report: %s\n\n", escape(report.Source))
	fmt.Fprintf(&b, "Report `%s` generated %s.\n\n", report.ID, report.GeneratedAt.Format(time.RFC3339))

	if len(report.Columns) > 0 {
		r.writeSummaryTable(&b, report.Columns)
		r.writeShape(&b, report.Columns)
		r.writeForecasts(&b, report.Columns)
	}
	if len(report.Groups) > 0 {
		r.writeGroups(&b, report)
	}
	return b.Bytes()
}

// HTML renders the Markdown form as a complete HTML page
func (r *Renderer) HTML(report *stats.Report) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Analysis report: " + report.Source,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(r.Markdown(report), p, renderer)
}

func (r *Renderer) writeSummaryTable(b *bytes.Buffer, columns []stats.ColumnReport) {
	b.WriteString("## Summary statistics\n\n| Statistic |")
	for _, col := range columns {
		fmt.Fprintf(b, " %s |", escape(col.Column))
	}
	b.WriteString("\n|---|")
	for range columns {
		b.WriteString("---:|")
	}

	b.WriteString("\n| Count |")
	for _, col := range columns {
		fmt.Fprintf(b, " %d |", col.Summary.Count)
	}
	for _, row := range statRows {
		fmt.Fprintf(b, "\n| %s |", row.label)
		for _, col := range columns {
			if col.Summary.IsEmpty() {
				b.WriteString(" n/a |")
				continue
			}
			fmt.Fprintf(b, " %s |", r.number(row.value(col.Summary)))
		}
	}
	b.WriteString("\n\n")
}

func (r *Renderer) writeShape(b *bytes.Buffer, columns []stats.ColumnReport) {
	b.WriteString("## Distribution shape\n\n")
	for _, col := range columns {
		fmt.Fprintf(b, "- **%s**: %s; %s\n", escape(col.Column),
			col.Interpretation.Skewness, col.Interpretation.Kurtosis)
	}
	b.WriteString("\n")
}

func (r *Renderer) writeForecasts(b *bytes.Buffer, columns []stats.ColumnReport) {
	header := false
	for _, col := range columns {
		fc := col.Forecast
		if fc == nil {
			continue
		}
		if !header {
			b.WriteString("## Forecasts\n\n")
			header = true
		}
		fmt.Fprintf(b, "### %s (%s)\n\n", escape(col.Column), fc.Method)
		if !fc.IsValid {
			fmt.Fprintf(b, "Forecast failed: %s\n\n", fc.ErrorMessage)
			continue
		}

		bounds := len(fc.LowerBound) == len(fc.Predicted) && len(fc.UpperBound) == len(fc.Predicted)
		if bounds {
			b.WriteString("| Period | Predicted | Lower 95% | Upper 95% |\n|---:|---:|---:|---:|\n")
		} else {
			b.WriteString("| Period | Predicted |\n|---:|---:|\n")
		}
		for i, p := range fc.Predicted {
			if bounds {
				fmt.Fprintf(b, "| %d | %s | %s | %s |\n", i+1, r.number(p),
					r.number(fc.LowerBound[i]), r.number(fc.UpperBound[i]))
			} else {
				fmt.Fprintf(b, "| %d | %s |\n", i+1, r.number(p))
			}
		}
		fmt.Fprintf(b, "\nIn-sample MSE: %s\n\n", r.number(fc.ErrorMetric))
	}
}

func (r *Renderer) writeGroups(b *bytes.Buffer, report *stats.Report) {
	fmt.Fprintf(b, "## Group by: %s\n\n| Group | Rows | Value |\n|---|---:|---:|\n", escape(report.GroupBy))
	for _, g := range report.Groups {
		value := r.number(g.Value)
		if !g.Valid {
			value = "n/a (" + escape(g.ErrorMessage) + ")"
		}
		key := g.Key
		if key == "" {
			key = "(blank)"
		}
		fmt.Fprintf(b, "| %s | %d | %s |\n", escape(key), g.Count, value)
	}
	b.WriteString("\n")
}

func (r *Renderer) number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', r.precision, 64)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
