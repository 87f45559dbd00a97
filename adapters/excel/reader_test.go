package excel

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"tabstat/domain/core"
	"tabstat/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() testkit.Table {
	return testkit.Table{
		Headers: []string{"units", "price"},
		Columns: [][]float64{{1, 2, 3}, {9.5, math.NaN(), 4}},
	}
}

func TestReadTable_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, fixture().WriteCSV(path))

	table, err := NewDataReader(path).ReadTable(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "sales.csv", table.Name)
	assert.Equal(t, []string{"units", "price"}, table.Headers)
	assert.Equal(t, 3, table.NumRows())

	price, err := table.ColumnAsFloats("price")
	require.NoError(t, err)
	assert.Equal(t, 9.5, price[0])
	assert.True(t, math.IsNaN(price[1]))
}

func TestReadTable_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, fixture().WriteXLSX(path, "Data"))

	table, err := NewDataReader(path).WithSheet("Data").ReadTable(context.Background())
	require.NoError(t, err)

	units, err := table.ColumnAsFloats("units")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, units)
	assert.True(t, table.IsNumericColumn("price"))
}

func TestReadTable_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, fixture().WriteXLSX(path, "Data"))

	_, err := NewDataReader(path).ReadTable(context.Background())
	assert.ErrorIs(t, err, core.ErrSheetNotFound)
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadTable(context.Background())
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestReadTable_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0o644))

	_, err := NewDataReader(path).ReadTable(context.Background())
	assert.ErrorContains(t, err, "at least a header row and one data row")
}

func TestReadTable_RaggedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1\n2,3,4\n"), 0o644))

	table, err := NewDataReader(path).ReadTable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", ""}, {"2", "3"}}, table.Rows)
}

func TestReadTable_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDataReader("whatever.csv").ReadTable(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
