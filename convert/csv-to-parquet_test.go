package convert

import (
	"bytes"
	"context"
	"testing"

	"github.com/apache/arrow/go/v16/arrow/memory"
	"github.com/apache/arrow/go/v16/parquet/file"
	"github.com/apache/arrow/go/v16/parquet/pqarrow"

	"github.com/lakepipe/lakepipe/logger"
)

func TestCsvToParquet(t *testing.T) {
	log := logger.NewLogger("lakepipe", "info", false)
	csvData := []byte("id,name,value\n1,Alice,100\n2,Bob,200\n")

	out, err := CsvToParquet(log, "data1.csv", csvData)
	if err != nil {
		t.Fatal("unexpected error converting CSV: ", err)
	}

	// Read the Parquet data back and confirm rows and columns survived.
	rdr, err := file.NewParquetReader(bytes.NewReader(out))
	if err != nil {
		t.Fatal("output is not readable as Parquet: ", err)
	}
	defer rdr.Close()
	fr, err := pqarrow.NewFileReader(rdr, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		t.Fatal("unable to create arrow reader: ", err)
	}
	tbl, err := fr.ReadTable(context.Background())
	if err != nil {
		t.Fatal("unable to read table: ", err)
	}
	defer tbl.Release()

	if tbl.NumRows() != 2 {
		t.Fatalf("got %v rows; expected 2", tbl.NumRows())
	}
	expectedCols := []string{"id", "name", "value"}
	if int(tbl.NumCols()) != len(expectedCols) {
		t.Fatalf("got %v columns; expected %v", tbl.NumCols(), len(expectedCols))
	}
	for idx, name := range expectedCols {
		if got := tbl.Schema().Field(idx).Name; got != name {
			t.Fatalf("column %v is %q; expected %q", idx, got, name)
		}
	}
}

func TestCsvToParquetNoRows(t *testing.T) {
	log := logger.NewLogger("lakepipe", "info", false)
	if _, err := CsvToParquet(log, "empty.csv", []byte("id,name,value\n")); err == nil {
		t.Fatal("expected an error for a header-only CSV")
	}
}
