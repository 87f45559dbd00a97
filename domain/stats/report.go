package stats

import (
	"time"

	"tabstat/domain/core"
)

// Interpretation is the plain-language reading of a column's shape statistics
type Interpretation struct {
	Skewness string `json:"skewness"`
	Kurtosis string `json:"kurtosis"`
}

// ColumnReport is the analysis of one numeric column
type ColumnReport struct {
	Column         string         `json:"column"`
	Summary        Summary        `json:"summary"`
	FiveNumber     FiveNumber     `json:"five_number"`
	Interpretation Interpretation `json:"interpretation"`
	Forecast       *Forecast      `json:"forecast,omitempty"`
}

// GroupResult is one group of a group-by aggregation
type GroupResult struct {
	Key          string  `json:"key"`
	Count        int     `json:"count"`
	Value        float64 `json:"value"`
	Valid        bool    `json:"valid"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// Report bundles the analyses produced from one table
type Report struct {
	ID          core.ReportID  `json:"id"`
	Source      string         `json:"source"`
	GeneratedAt time.Time      `json:"generated_at"`
	Columns     []ColumnReport `json:"columns"`

	// GroupBy describes Groups, e.g. "mean of units by region"
	GroupBy string        `json:"group_by,omitempty"`
	Groups  []GroupResult `json:"groups,omitempty"`
}

// NewReport creates an empty report with a fresh identifier
func NewReport(source string) *Report {
	return &Report{
		ID:          core.NewReportID(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
	}
}
