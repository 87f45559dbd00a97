package ports

import (
	"context"

	"tabstat/domain/stats"
)

// ReportWriter persists a finished analysis report in some output format
type ReportWriter interface {
	WriteReport(ctx context.Context, report *stats.Report) error
}
