package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tabstat/domain/core"
	"tabstat/domain/dataset"
	"tabstat/internal"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is read when no sheet is configured
const DefaultSheet = "Sheet1"

var logger = internal.DefaultLogger.WithComponent("DataReader")

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewDataReader creates a reader; the file type follows the extension
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType, sheet: DefaultSheet}
}

// WithSheet selects the worksheet read from workbooks. CSV files ignore it.
func (r *DataReader) WithSheet(sheet string) *DataReader {
	if sheet != "" {
		r.sheet = sheet
	}
	return r
}

// ReadTable reads the file into a table
func (r *DataReader) ReadTable(ctx context.Context) (*dataset.Table, error) {
	logger.Debug("Starting to read %s file: %s", r.fileType, r.filePath)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s file %s", core.ErrNotFound, strings.ToUpper(r.fileType), r.filePath)
	}

	var (
		rows [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row",
			strings.ToUpper(r.fileType))
	}
	return r.processRows(rows), nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	logger.Debug("Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	if !hasSheet(f.GetSheetList(), r.sheet) {
		return nil, fmt.Errorf("%w: %s", core.ErrSheetNotFound, r.sheet)
	}

	readStart := time.Now()
	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.sheet, err)
	}
	logger.Debug("%s read in %.2fms (%d rows)", r.sheet,
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	logger.Debug("CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// processRows splits the header row from the data rows
func (r *DataReader) processRows(rows [][]string) *dataset.Table {
	table := dataset.NewTable(filepath.Base(r.filePath), rows[0], rows[1:])
	logger.Info("%s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), table.NumCols(), table.NumRows())
	return table
}

func hasSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
