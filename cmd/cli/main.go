package main

import (
	"fmt"
	"os"

	"tabstat/internal"
	"tabstat/internal/analysis"
	"tabstat/internal/config"

	"github.com/spf13/cobra"
)

// cliState is filled by the root command before any subcommand runs
type cliState struct {
	cfg      *config.Config
	analyzer *analysis.Analyzer

	sheet    string
	dataPath string
	where    []string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "tabstat",
		Short:         "Descriptive statistics and forecasts for CSV, Excel and JSON tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			internal.DefaultLogger.SetLevel(cfg.LogLevel)
			state.cfg = cfg
			state.analyzer = analysis.NewAnalyzer(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.sheet, "sheet", "", "Worksheet to read from .xlsx files (default DATA_SHEET or Sheet1)")
	rootCmd.PersistentFlags().StringVar(&state.dataPath, "path", "", "gjson path to the records inside a .json file")
	rootCmd.PersistentFlags().StringArrayVar(&state.where, "where", nil,
		`Row filter such as "units>=10", "region = north" or "name starts_with Jo" (repeatable, all must hold)`)

	rootCmd.AddCommand(
		newSummaryCmd(state),
		newForecastCmd(state),
		newGroupByCmd(state),
		newExportCmd(state),
	)

	return rootCmd
}
