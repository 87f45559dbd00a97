package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"tabstat/adapters/excel"
	"tabstat/adapters/jsonsource"
	"tabstat/domain/core"
	"tabstat/domain/dataset"
	"tabstat/internal/report"
	"tabstat/ports"
)

// sourceFor picks the reader for file by extension. An empty file falls
// back to DATA_FILE.
func (s *cliState) sourceFor(args []string) (ports.TableSource, error) {
	file := s.cfg.Data.File
	if len(args) > 0 {
		file = args[0]
	}
	if file == "" {
		return nil, core.NewParameterError("file", "no input file given and DATA_FILE is not set")
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		return jsonsource.NewFileReader(file, s.dataPath), nil
	case ".csv", ".xlsx", ".xlsm":
		sheet := s.sheet
		if sheet == "" {
			sheet = s.cfg.Data.Sheet
		}
		return excel.NewDataReader(file).WithSheet(sheet), nil
	}
	return nil, core.NewParameterError("file", fmt.Sprintf("unsupported file type %q (use .csv, .xlsx or .json)", filepath.Ext(file)))
}

func (s *cliState) readTable(ctx context.Context, args []string) (*dataset.Table, error) {
	source, err := s.sourceFor(args)
	if err != nil {
		return nil, err
	}
	filters, err := s.filters()
	if err != nil {
		return nil, err
	}
	table, err := source.ReadTable(ctx)
	if err != nil {
		return nil, err
	}
	return s.analyzer.FilterTable(table, filters)
}

func (s *cliState) filters() ([]dataset.Filter, error) {
	filters := make([]dataset.Filter, 0, len(s.where))
	for _, expr := range s.where {
		f, err := dataset.ParseFilter(expr)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// writerFor picks the report writer for out by extension
func (s *cliState) writerFor(out string) (ports.ReportWriter, error) {
	if strings.EqualFold(filepath.Ext(out), ".xlsx") {
		return excel.NewSummaryExporter(out), nil
	}
	format, ok := report.FormatForPath(out)
	if !ok {
		return nil, core.NewParameterError("out", fmt.Sprintf("unsupported report type %q (use .xlsx, .html or .md)", filepath.Ext(out)))
	}
	return report.NewFileWriter(out, format, s.renderer()), nil
}

func (s *cliState) renderer() *report.Renderer {
	return report.NewRenderer(s.cfg.Analysis.Precision)
}

func columnFlag(raw string) (string, error) {
	key, err := core.ParseColumnKey(raw)
	if err != nil {
		return "", core.NewParameterError("column", err.Error())
	}
	return key.String(), nil
}

func parseWeights(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	weights := make([]float64, 0, len(parts))
	for _, part := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, core.NewParameterError("weights", fmt.Sprintf("%q is not a number", part))
		}
		weights = append(weights, w)
	}
	return weights, nil
}
