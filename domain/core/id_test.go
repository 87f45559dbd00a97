package core

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestNewReportIDIsUUID tests that report IDs parse as UUIDs
func TestNewReportIDIsUUID(t *testing.T) {
	id := NewReportID()
	if _, err := uuid.Parse(id.String()); err != nil {
		t.Errorf("Expected report ID to be a UUID, got %q: %v", id, err)
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseReportID tests report ID parsing
func TestParseReportID(t *testing.T) {
	valid := uuid.New().String()
	tests := []struct {
		input    string
		expected ReportID
		hasError bool
	}{
		{valid, ReportID(valid), false},
		{"", "", true},
		{"   ", "", true},
		{"not-a-uuid", "", true},
	}

	for _, test := range tests {
		result, err := ParseReportID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestParseColumnKey tests column key parsing
func TestParseColumnKey(t *testing.T) {
	tests := []struct {
		input    string
		expected ColumnKey
		hasError bool
	}{
		{"revenue", ColumnKey("revenue"), false},
		{"  revenue ", ColumnKey("revenue"), false},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseColumnKey(test.input)
		if test.hasError != (err != nil) {
			t.Errorf("Input '%s': expected error=%v, got %v", test.input, test.hasError, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestErrorClassification tests sentinel helpers
func TestErrorClassification(t *testing.T) {
	if !IsNotFoundError(NewColumnNotFoundError("x")) {
		t.Error("Expected column error to be a not-found error")
	}
	if !IsInputError(NewInsufficientDataError(2, 1)) {
		t.Error("Expected insufficient data to be an input error")
	}
	if !IsInputError(NewParameterError("alpha", "must be in (0,1)")) {
		t.Error("Expected parameter error to be an input error")
	}
	if !IsDegenerateError(ErrSingularMatrix) {
		t.Error("Expected singular matrix to be degenerate")
	}
	if !errors.Is(ErrSingularMatrix, ErrDegenerate) {
		t.Error("Expected ErrSingularMatrix to wrap ErrDegenerate")
	}
}
