package constants

import (
	"strings"
	"testing"
)

func TestDefaultCsvFiles(t *testing.T) {
	// The default file list drives one download/convert/upload per entry so
	// duplicates or bad suffixes would cause repeat work downstream.
	seen := make(map[string]bool)
	for _, f := range DefaultCsvFiles {
		if !strings.HasSuffix(f, CsvFileSuffix) {
			t.Fatalf("file %q does not end with %q", f, CsvFileSuffix)
		}
		if seen[f] {
			t.Fatalf("duplicate file %q in DefaultCsvFiles", f)
		}
		seen[f] = true
	}
}
