package ports

import (
	"context"

	"tabstat/domain/dataset"
)

// TableSource loads a table from a file, document or other origin
type TableSource interface {
	ReadTable(ctx context.Context) (*dataset.Table, error)
}
