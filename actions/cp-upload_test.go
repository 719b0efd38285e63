package actions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lakepipe/lakepipe/gcp/gcs"
)

func writeTestFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), testCsvData, 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunCpUpload(t *testing.T) {
	dir := t.TempDir()
	writeTestFiles(t, dir, "patients.csv", "care-plans.csv", "notes.txt")
	tgt := gcs.NewMockBasicClient()

	cfg := &CpUploadConfig{
		LogLevel:         "error",
		SourceDir:        dir,
		TargetURL:        "gs://demo-lnd-cs-0/csv_data",
		GcsClientFactory: newMockGcsFactory(map[string]*gcs.MockBasicClient{"demo-lnd-cs-0": tgt}),
	}
	if err := RunCpUpload(cfg); err != nil {
		t.Fatal("unexpected error: ", err)
	}
	if len(tgt.Objects) != 2 {
		t.Fatalf("got %v objects; expected only the CSV files", len(tgt.Objects))
	}
	for _, key := range []string{"patients.csv", "care-plans.csv"} {
		if !bytes.Equal(tgt.Objects[key], testCsvData) {
			t.Fatalf("object %v content mismatch", key)
		}
		if tgt.PutCalls[key] != 1 {
			t.Fatalf("got %v uploads of %v; expected 1", tgt.PutCalls[key], key)
		}
	}
}

func TestRunCpUploadEmptyDir(t *testing.T) {
	cfg := &CpUploadConfig{
		LogLevel:  "error",
		SourceDir: t.TempDir(),
		TargetURL: "gs://demo-lnd-cs-0/csv_data",
	}
	if err := RunCpUpload(cfg); err == nil {
		t.Fatal("expected an error for a directory without CSV files")
	}
}
