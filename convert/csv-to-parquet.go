package convert

import (
	"bytes"

	"github.com/apache/arrow/go/v16/arrow"
	"github.com/apache/arrow/go/v16/arrow/array"
	"github.com/apache/arrow/go/v16/arrow/csv"
	"github.com/apache/arrow/go/v16/arrow/memory"
	"github.com/apache/arrow/go/v16/parquet"
	"github.com/apache/arrow/go/v16/parquet/compress"
	"github.com/apache/arrow/go/v16/parquet/pqarrow"
	"github.com/pkg/errors"

	"github.com/lakepipe/lakepipe/logger"
)

// CsvToParquet converts the supplied CSV bytes to Parquet bytes.
// The first CSV row is treated as a header and column types are inferred,
// matching the discovery options used for zones and assets.
// name is used for log messages only.
func CsvToParquet(log logger.Logger, name string, data []byte) ([]byte, error) {
	mem := memory.NewGoAllocator()
	rdr := csv.NewInferringReader(bytes.NewReader(data),
		csv.WithAllocator(mem),
		csv.WithChunk(-1), // one record holding all rows.
		csv.WithHeader(true),
		csv.WithNullReader(true, ""),
	)
	defer rdr.Release()

	recs := make([]arrow.Record, 0, 1)
	for rdr.Next() {
		rec := rdr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	defer func() {
		for _, rec := range recs {
			rec.Release()
		}
	}()
	if err := rdr.Err(); err != nil {
		return nil, errors.Wrapf(err, "error reading CSV data for %v", name)
	}
	if len(recs) == 0 {
		return nil, errors.Errorf("no data rows found in %v", name)
	}

	tbl := array.NewTableFromRecords(rdr.Schema(), recs)
	defer tbl.Release()
	log.Debug(name, " contains ", tbl.NumRows(), " rows in ", tbl.NumCols(), " columns")

	buf := &bytes.Buffer{}
	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	if err := pqarrow.WriteTable(tbl, buf, tbl.NumRows(), props, pqarrow.DefaultWriterProps()); err != nil {
		return nil, errors.Wrapf(err, "error writing Parquet data for %v", name)
	}
	return buf.Bytes(), nil
}
