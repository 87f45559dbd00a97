package main

import (
	"fmt"

	"tabstat/domain/stats"
	"tabstat/internal/analysis"
	"tabstat/internal/forecast"

	"github.com/spf13/cobra"
)

func newSummaryCmd(state *cliState) *cobra.Command {
	var column string
	var format string

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Summarize one numeric column",
		Long: `Compute count, mean, median, mode, dispersion, quartiles and shape
statistics for a column, plus a plain-language reading of its shape.

Example: tabstat summary sales.csv --column units --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := columnFlag(column)
			if err != nil {
				return err
			}
			table, err := state.readTable(cmd.Context(), args)
			if err != nil {
				return err
			}
			columnReport, err := state.analyzer.AnalyzeColumn(cmd.Context(), table, name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return printJSON(out, columnReport)
			case "markdown", "md":
				return state.printMarkdown(out, table.Name, columnReport)
			case "text":
				return printSummaryText(out, columnReport)
			}
			return fmt.Errorf("unknown format %q (use text, json or markdown)", format)
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "Column to summarize")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json or markdown")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func newForecastCmd(state *cliState) *cobra.Command {
	var column, method, weights, format string
	var window, periods int
	var alpha, beta float64

	cmd := &cobra.Command{
		Use:   "forecast [file]",
		Short: "Forecast the next values of a numeric column",
		Long: `Forecast a column with a moving average, exponential smoothing or a
linear trend. Parameters not given fall back to FORECAST_* settings.

Methods: sma, wma, es, des, linear

Example: tabstat forecast sales.xlsx --column units --method des --alpha 0.5 --beta 0.3 --periods 6`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := columnFlag(column)
			if err != nil {
				return err
			}
			m, err := stats.ParseForecastMethod(method)
			if err != nil {
				return err
			}
			w, err := parseWeights(weights)
			if err != nil {
				return err
			}
			table, err := state.readTable(cmd.Context(), args)
			if err != nil {
				return err
			}

			params := forecast.Params{Window: window, Weights: w, Alpha: alpha, Beta: beta, Periods: periods}
			columnReport, err := state.analyzer.ForecastColumn(cmd.Context(), table, name, m, params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				if err := printJSON(out, columnReport.Forecast); err != nil {
					return err
				}
			} else if err := printForecastText(out, name, columnReport.Forecast); err != nil {
				return err
			}
			return columnReport.Forecast.Err()
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "Column to forecast")
	cmd.Flags().StringVar(&method, "method", "sma", "Forecast method: sma, wma, es, des or linear")
	cmd.Flags().IntVar(&window, "window", 0, "Moving average window")
	cmd.Flags().StringVar(&weights, "weights", "", "Comma-separated weights for wma, oldest first")
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "Level smoothing factor in (0,1]")
	cmd.Flags().Float64Var(&beta, "beta", 0, "Trend smoothing factor in (0,1]")
	cmd.Flags().IntVar(&periods, "periods", 0, "Number of periods to forecast")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func newGroupByCmd(state *cliState) *cobra.Command {
	var key, value, agg, format string

	cmd := &cobra.Command{
		Use:   "groupby [file]",
		Short: "Aggregate a numeric column per distinct key",
		Long: `Group rows by the key column and reduce the value column in each group.

Aggregations: count, sum, mean, min, max, stddev

Example: tabstat groupby sales.csv --key region --value units --agg sum`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyColumn, err := columnFlag(key)
			if err != nil {
				return err
			}
			valueColumn, err := columnFlag(value)
			if err != nil {
				return err
			}
			aggregation, err := analysis.ParseAggregation(agg)
			if err != nil {
				return err
			}
			table, err := state.readTable(cmd.Context(), args)
			if err != nil {
				return err
			}

			groups, err := state.analyzer.GroupBy(cmd.Context(), table, keyColumn, valueColumn, aggregation)
			if err != nil {
				return err
			}
			if format == "json" {
				return printJSON(cmd.OutOrStdout(), groups)
			}
			return printGroupsText(cmd.OutOrStdout(), aggregation, groups)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Column whose distinct values form the groups")
	cmd.Flags().StringVar(&value, "value", "", "Numeric column to aggregate")
	cmd.Flags().StringVar(&agg, "agg", "mean", "Aggregation: count, sum, mean, min, max or stddev")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newExportCmd(state *cliState) *cobra.Command {
	var outPath, method, groupKey, groupValue, agg string
	var columns []string
	var periods int

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a report for the numeric columns of a table",
		Long: `Write a report to .xlsx (one sheet per section), .html or .md.
All numeric columns are included unless --columns is given. --method adds a
forecast per column; --key and --value add a group-by section.

Example: tabstat export sales.csv --out report.xlsx --method linear --key region --value units --agg sum`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			writer, err := state.writerFor(outPath)
			if err != nil {
				return err
			}
			source, err := state.sourceFor(args)
			if err != nil {
				return err
			}

			filters, err := state.filters()
			if err != nil {
				return err
			}
			opts := analysis.ReportOptions{Filters: filters}
			for _, c := range columns {
				name, err := columnFlag(c)
				if err != nil {
					return err
				}
				opts.Columns = append(opts.Columns, name)
			}
			if method != "" {
				m, err := stats.ParseForecastMethod(method)
				if err != nil {
					return err
				}
				opts.Forecast = true
				opts.Method = m
				opts.Params = forecast.Params{Periods: periods}
			}
			if groupKey != "" {
				if opts.GroupKey, err = columnFlag(groupKey); err != nil {
					return err
				}
				if opts.GroupValue, err = columnFlag(groupValue); err != nil {
					return err
				}
				if opts.Aggregation, err = analysis.ParseAggregation(agg); err != nil {
					return err
				}
			}

			rep, err := state.analyzer.BuildReport(cmd.Context(), source, opts)
			if err != nil {
				return err
			}
			if err := writer.WriteReport(cmd.Context(), rep); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report %s written to %s (%d columns)\n", rep.ID, outPath, len(rep.Columns))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Output file: .xlsx, .html or .md")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to include (default all numeric columns)")
	cmd.Flags().StringVar(&method, "method", "", "Add a forecast per column with this method")
	cmd.Flags().IntVar(&periods, "periods", 0, "Forecast periods")
	cmd.Flags().StringVar(&groupKey, "key", "", "Add a group-by section keyed on this column")
	cmd.Flags().StringVar(&groupValue, "value", "", "Column aggregated in the group-by section")
	cmd.Flags().StringVar(&agg, "agg", "mean", "Group-by aggregation")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
