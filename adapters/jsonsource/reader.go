// Package jsonsource reads tables out of JSON documents using gjson paths
package jsonsource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tabstat/domain/core"
	"tabstat/domain/dataset"
	"tabstat/internal"

	"github.com/tidwall/gjson"
)

var logger = internal.DefaultLogger.WithComponent("JSONReader")

// Reader extracts a table from the value at DataPath. The value must be an
// array of objects (keys become headers in order of first appearance), an
// array of arrays (the first one is the header row) or a single object.
type Reader struct {
	name     string
	filePath string
	body     []byte
	dataPath string
}

// NewFileReader reads the document from filePath on every ReadTable call
func NewFileReader(filePath, dataPath string) *Reader {
	return &Reader{name: filepath.Base(filePath), filePath: filePath, dataPath: dataPath}
}

// NewBytesReader reads from an in-memory document
func NewBytesReader(name string, body []byte, dataPath string) *Reader {
	return &Reader{name: name, body: body, dataPath: dataPath}
}

// ReadTable resolves the data path and converts the records
func (r *Reader) ReadTable(ctx context.Context) (*dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := r.body
	if r.filePath != "" {
		raw, err := os.ReadFile(r.filePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: JSON file %s", core.ErrNotFound, r.filePath)
			}
			return nil, fmt.Errorf("failed to read JSON file: %w", err)
		}
		body = raw
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: document is not valid JSON", core.ErrInvalidParameter)
	}

	data := gjson.ParseBytes(body)
	if r.dataPath != "" {
		data = gjson.GetBytes(body, r.dataPath)
	}
	if !data.Exists() {
		return nil, fmt.Errorf("%w: data path '%s'", core.ErrNotFound, r.dataPath)
	}

	var (
		headers []string
		rows    [][]string
	)
	switch {
	case data.IsObject():
		headers, rows = fromObjects([]gjson.Result{data})
	case data.IsArray():
		records := data.Array()
		if len(records) > 0 && records[0].IsArray() {
			headers, rows = fromArrays(records)
		} else {
			headers, rows = fromObjects(records)
		}
	default:
		return nil, fmt.Errorf("%w: data path '%s' is not an array or object", core.ErrInvalidParameter, r.dataPath)
	}

	table := dataset.NewTable(r.name, headers, rows)
	logger.Info("JSON document processed (%d columns, %d rows)", table.NumCols(), table.NumRows())
	return table, nil
}

func fromObjects(records []gjson.Result) ([]string, [][]string) {
	index := make(map[string]int)
	var headers []string
	for _, rec := range records {
		rec.ForEach(func(key, _ gjson.Result) bool {
			if _, seen := index[key.String()]; !seen {
				index[key.String()] = len(headers)
				headers = append(headers, key.String())
			}
			return true
		})
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if !rec.IsObject() {
			logger.Debug("Skipping non-object record: %s", rec.Raw)
			continue
		}
		row := make([]string, len(headers))
		rec.ForEach(func(key, value gjson.Result) bool {
			row[index[key.String()]] = cellText(value)
			return true
		})
		rows = append(rows, row)
	}
	return headers, rows
}

func fromArrays(records []gjson.Result) ([]string, [][]string) {
	var headers []string
	for _, h := range records[0].Array() {
		headers = append(headers, h.String())
	}
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		var row []string
		for _, v := range rec.Array() {
			row = append(row, cellText(v))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// cellText renders a JSON value as a table cell; null becomes empty
func cellText(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.JSON:
		return v.Raw
	default:
		return v.String()
	}
}
