package report

import (
	"strings"
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	got, err := ParseDate("study-year-start", "2023-09-01")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}

	if got.Year() != 2023 {
		t.Errorf("Expected year 2023, got %d", got.Year())
	}
	if got.Month() != time.September {
		t.Errorf("Expected month September, got %s", got.Month())
	}
	if got.Day() != 1 {
		t.Errorf("Expected day 1, got %d", got.Day())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"month out of range", "2023-13-01"},
		{"day out of range", "2023-02-30"},
		{"not a date", "not-a-date"},
		{"missing zero padding", "2023-9-1"},
		{"empty", ""},
		{"trailing garbage", "2023-09-01x"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseDate("cutoff-date", test.input)
			if err == nil {
				t.Fatalf("Expected error for input %q, got none", test.input)
			}

			if !strings.Contains(err.Error(), test.input) {
				t.Errorf("Error %q does not name the offending input %q", err, test.input)
			}
			if !strings.Contains(err.Error(), "cutoff-date") {
				t.Errorf("Error %q does not name the argument", err)
			}
			if !strings.Contains(err.Error(), "YYYY-MM-DD") {
				t.Errorf("Error %q does not state the expected format", err)
			}
		})
	}
}
