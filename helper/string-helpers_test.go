package helper

import (
	"reflect"
	"testing"
)

func TestReplaceFileSuffix(t *testing.T) {
	tests := []struct {
		input    string
		old      string
		new      string
		expected string
	}{
		{"patients.csv", ".csv", ".parquet", "patients.parquet"},
		{"claims_transactions.csv", ".csv", ".parquet", "claims_transactions.parquet"},
		{"noSuffix", ".csv", ".parquet", "noSuffix"},
		{"nested/dir/payers.csv", ".csv", ".parquet", "nested/dir/payers.parquet"},
	}
	for _, tt := range tests {
		if got := ReplaceFileSuffix(tt.input, tt.old, tt.new); got != tt.expected {
			t.Fatalf("ReplaceFileSuffix(%q) = %q; expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestTableNameFromObjectKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"patients.csv", "patients"},
		{"csv_data/payer-transitions.csv", "payer_transitions"},
		{"gs://demo-lnd-cs-0/csv_data/imaging_studies.csv", "imaging_studies"},
		{"my-file", "my_file"},
	}
	for _, tt := range tests {
		if got := TableNameFromObjectKey(tt.input); got != tt.expected {
			t.Fatalf("TableNameFromObjectKey(%q) = %q; expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestCsvFilesFromTokens(t *testing.T) {
	got := CsvFilesFromTokens(" a.csv, b.csv ,,c.csv")
	expected := []string{"a.csv", "b.csv", "c.csv"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("CsvFilesFromTokens returned %v; expected %v", got, expected)
	}
	if got := CsvFilesFromTokens(""); len(got) != 0 {
		t.Fatalf("expected empty slice for empty input, got %v", got)
	}
}
