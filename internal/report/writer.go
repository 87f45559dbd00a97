package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tabstat/domain/stats"
	"tabstat/internal"
)

// Format selects the document type produced by FileWriter
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// FormatForPath picks the format from a file extension (.md, .markdown, .html, .htm)
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".html", ".htm":
		return FormatHTML, true
	}
	return "", false
}

// FileWriter writes rendered reports to a file
type FileWriter struct {
	path     string
	format   Format
	renderer *Renderer
	logger   *internal.Logger
}

// NewFileWriter creates a writer for path in the given format
func NewFileWriter(path string, format Format, renderer *Renderer) *FileWriter {
	return &FileWriter{
		path:     path,
		format:   format,
		renderer: renderer,
		logger:   internal.DefaultLogger.WithComponent("ReportWriter"),
	}
}

// WriteReport renders the report and replaces the file contents
func (w *FileWriter) WriteReport(ctx context.Context, report *stats.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body []byte
	switch w.format {
	case FormatMarkdown:
		body = w.renderer.Markdown(report)
	case FormatHTML:
		body = w.renderer.HTML(report)
	default:
		return fmt.Errorf("unsupported report format: %s", w.format)
	}

	if err := os.WriteFile(w.path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", w.path, err)
	}
	w.logger.Info("Wrote %s report %s to %s", w.format, report.ID, w.path)
	return nil
}
