package testkit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeriesGenerator_Deterministic(t *testing.T) {
	config := DefaultSeriesConfig()
	a := NewSeriesGenerator(config).Generate()
	b := NewSeriesGenerator(config).Generate()

	if len(a) != config.Length {
		t.Fatalf("Expected %d values, got %d", config.Length, len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Value %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSeriesGenerator_MissingRate(t *testing.T) {
	config := DefaultSeriesConfig()
	config.Length = 1000
	config.MissingRate = 0.2

	values := NewSeriesGenerator(config).Generate()
	missing := 0
	for _, v := range values {
		if math.IsNaN(v) {
			missing++
		}
	}
	if missing < 100 || missing > 300 {
		t.Errorf("Expected roughly 200 missing values, got %d", missing)
	}
}

func TestLinearAndConstant(t *testing.T) {
	got := Linear(5, 1, 2)
	want := []float64{3, 5, 7, 9, 11}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Linear[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	for _, v := range Constant(3, 4.5) {
		if v != 4.5 {
			t.Errorf("Constant produced %v", v)
		}
	}
}

func TestWithInvalid(t *testing.T) {
	out := WithInvalid([]float64{1, 2, 3})
	finite := 0
	for _, v := range out {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite++
		}
	}
	if finite != 3 || len(out) != 7 {
		t.Errorf("Expected 3 finite of 7, got %d of %d", finite, len(out))
	}
}

func TestTable_WriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.csv")
	table := Table{
		Headers: []string{"a", "b"},
		Columns: [][]float64{{1, 2}, {3, math.NaN()}},
	}
	if err := table.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	if got := strings.TrimSpace(string(raw)); got != "a,b\n1,3\n2," {
		t.Errorf("Unexpected CSV content %q", got)
	}
}

func TestTable_WriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	table := Table{Headers: []string{"x"}, Columns: [][]float64{{1.5, 2.5}}}
	if err := table.WriteXLSX(path, "Data"); err != nil {
		t.Fatalf("WriteXLSX failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected workbook at %s: %v", path, err)
	}
}
