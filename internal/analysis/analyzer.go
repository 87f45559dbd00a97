// Package analysis runs the statistics workflow over tables: per-column
// summaries, forecasts, group-by aggregation and full reports.
package analysis

import (
	"context"
	"fmt"

	"tabstat/domain/core"
	"tabstat/domain/dataset"
	"tabstat/domain/stats"
	"tabstat/internal"
	"tabstat/internal/config"
	"tabstat/internal/descriptive"
	"tabstat/internal/forecast"
	"tabstat/ports"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Analyzer applies the numeric kernels to table columns using configured defaults
type Analyzer struct {
	defaults       config.ForecastConfig
	maxConcurrency int64
	logger         *internal.Logger
}

// NewAnalyzer creates an analyzer from the forecast and analysis settings of cfg
func NewAnalyzer(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	limit := int64(cfg.Analysis.MaxConcurrency)
	if limit < 1 {
		limit = 1
	}
	return &Analyzer{
		defaults:       cfg.Forecast,
		maxConcurrency: limit,
		logger:         internal.DefaultLogger.WithComponent("Analyzer"),
	}
}

// AnalyzeValues summarizes a raw sample. NaN and Inf entries are ignored.
func (a *Analyzer) AnalyzeValues(column string, values []float64) stats.ColumnReport {
	summary := descriptive.Summarize(values)
	return stats.ColumnReport{
		Column:         column,
		Summary:        summary,
		FiveNumber:     summary.FiveNumber(),
		Interpretation: Interpret(summary),
	}
}

// AnalyzeColumn summarizes one table column. Non-numeric cells are ignored;
// a column with no numeric cells yields an empty summary.
func (a *Analyzer) AnalyzeColumn(ctx context.Context, table *dataset.Table, column string) (stats.ColumnReport, error) {
	if err := ctx.Err(); err != nil {
		return stats.ColumnReport{}, err
	}
	values, err := table.ColumnAsFloats(column)
	if err != nil {
		return stats.ColumnReport{}, err
	}

	report := a.AnalyzeValues(column, values)
	if report.Summary.IsEmpty() {
		a.logger.Warn("Column %q has no valid numeric data", column)
	}
	return report, nil
}

// SummarizeColumns analyzes the given columns concurrently, at most
// MaxConcurrency at a time, returning reports in the requested order.
// An empty column list selects every numeric column.
func (a *Analyzer) SummarizeColumns(ctx context.Context, table *dataset.Table, columns []string) ([]stats.ColumnReport, error) {
	if len(columns) == 0 {
		columns = table.NumericColumns()
	}
	a.logger.Debug("Summarizing %d columns (concurrency %d)", len(columns), a.maxConcurrency)

	reports := make([]stats.ColumnReport, len(columns))
	sem := semaphore.NewWeighted(a.maxConcurrency)
	g, gctx := errgroup.WithContext(ctx)

	for i, column := range columns {
		i, column := i, column
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			report, err := a.AnalyzeColumn(gctx, table, column)
			if err != nil {
				return fmt.Errorf("column %s: %w", column, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Forecast runs method over the valid values of data. Zero-valued params
// fall back to the configured defaults; a weighted moving average without
// weights uses linearly increasing weights 1..window.
func (a *Analyzer) Forecast(data []float64, method stats.ForecastMethod, params forecast.Params) stats.Forecast {
	p := a.withDefaults(method, params)
	valid := descriptive.ValidData(data)
	if len(valid) < len(data) {
		a.logger.Debug("Forecast: dropped %d invalid values", len(data)-len(valid))
	}

	result := forecast.Run(method, valid, p)
	if !result.IsValid {
		a.logger.Debug("Forecast %s failed: %s", method, result.ErrorMessage)
	}
	return result
}

// ForecastColumn summarizes a column and attaches a forecast of its values
func (a *Analyzer) ForecastColumn(ctx context.Context, table *dataset.Table, column string,
	method stats.ForecastMethod, params forecast.Params) (stats.ColumnReport, error) {
	report, err := a.AnalyzeColumn(ctx, table, column)
	if err != nil {
		return report, err
	}
	values, err := table.ColumnAsFloats(column)
	if err != nil {
		return report, err
	}
	fc := a.Forecast(values, method, params)
	report.Forecast = &fc
	return report, nil
}

func (a *Analyzer) withDefaults(method stats.ForecastMethod, p forecast.Params) forecast.Params {
	if p.Window <= 0 {
		p.Window = a.defaults.Window
	}
	if p.Alpha == 0 {
		p.Alpha = a.defaults.Alpha
	}
	if p.Beta == 0 {
		p.Beta = a.defaults.Beta
	}
	if p.Periods == 0 {
		p.Periods = a.defaults.Periods
	}
	if method == stats.WeightedMovingAverage && len(p.Weights) == 0 {
		p.Weights = make([]float64, p.Window)
		for i := range p.Weights {
			p.Weights[i] = float64(i + 1)
		}
	}
	return p
}

// FilterTable keeps the rows that satisfy every filter, applied in order
func (a *Analyzer) FilterTable(table *dataset.Table, filters []dataset.Filter) (*dataset.Table, error) {
	for _, f := range filters {
		before := table.NumRows()
		filtered, err := table.Filter(f)
		if err != nil {
			return nil, fmt.Errorf("failed to apply filter %q: %w", f, err)
		}
		table = filtered
		a.logger.Debug("Filter %q kept %d of %d rows", f, table.NumRows(), before)
	}
	return table, nil
}

// ReportOptions selects what BuildReport computes besides column summaries
type ReportOptions struct {
	// Filters select the rows analyzed; all rows when empty
	Filters []dataset.Filter

	Columns []string

	Forecast bool
	Method   stats.ForecastMethod
	Params   forecast.Params

	GroupKey    string
	GroupValue  string
	Aggregation Aggregation
}

// BuildReport reads the source and assembles a report for the selected columns
func (a *Analyzer) BuildReport(ctx context.Context, source ports.TableSource, opts ReportOptions) (*stats.Report, error) {
	table, err := source.ReadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	if table, err = a.FilterTable(table, opts.Filters); err != nil {
		return nil, err
	}

	columns, err := a.SummarizeColumns(ctx, table, opts.Columns)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: table %s has no numeric columns", core.ErrNoValidData, table.Name)
	}

	if opts.Forecast {
		for i := range columns {
			values, err := table.ColumnAsFloats(columns[i].Column)
			if err != nil {
				return nil, err
			}
			fc := a.Forecast(values, opts.Method, opts.Params)
			columns[i].Forecast = &fc
		}
	}

	report := stats.NewReport(table.Name)
	report.Columns = columns

	if opts.GroupKey != "" {
		groups, err := a.GroupBy(ctx, table, opts.GroupKey, opts.GroupValue, opts.Aggregation)
		if err != nil {
			return nil, err
		}
		report.GroupBy = fmt.Sprintf("%s of %s by %s", opts.Aggregation, opts.GroupValue, opts.GroupKey)
		report.Groups = groups
	}

	a.logger.Info("Built report %s for %s (%d columns)", report.ID, table.Name, len(report.Columns))
	return report, nil
}
