package actions

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/convert"
	"github.com/lakepipe/lakepipe/gcp/gcs"
	"github.com/lakepipe/lakepipe/helper"
)

type CpParquetConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
	SourceURL        string `errorTxt:"source gs://<bucket>[/<prefix>]" mandatory:"yes"`
	TargetURL        string `errorTxt:"target gs://<bucket>[/<prefix>]" mandatory:"yes"`
	CsvFiles         []string
	GcsClientFactory GcsClientFactory
}

// RunCpParquet downloads each named CSV object from the source prefix,
// converts it to Parquet and uploads it under the target prefix with the
// .csv suffix replaced by .parquet. Each file is processed exactly once and
// the first failure aborts the remaining files.
func RunCpParquet(cfg *CpParquetConfig) error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	log := newLogger(cfg.LogLevel, cfg.StackDumpOnPanic)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	source, err := gcs.ParseGsURL(cfg.SourceURL)
	if err != nil {
		return err
	}
	target, err := gcs.ParseGsURL(cfg.TargetURL)
	if err != nil {
		return err
	}
	csvFiles := getCsvFiles(cfg.CsvFiles)
	ctx := context.Background()
	factory := getGcsClientFactory(cfg.GcsClientFactory)
	srcClient, err := factory(ctx, source.Name, source.Prefix)
	if err != nil {
		return errors.Wrap(err, "error creating source storage client")
	}
	tgtClient, err := factory(ctx, target.Name, target.Prefix)
	if err != nil {
		return errors.Wrap(err, "error creating target storage client")
	}
	runID := xid.New().String()
	log.Info("converting ", len(csvFiles), " CSV files from ", source.URL(), " to Parquet in ", target.URL(), " (run ", runID, ")")
	for _, f := range csvFiles {
		data, err := srcClient.Get(ctx, f)
		if err != nil {
			return errors.Wrapf(err, "error fetching %v", source.ObjectURL(f))
		}
		pq, err := convert.CsvToParquet(log, f, data)
		if err != nil {
			return err
		}
		targetKey := helper.ReplaceFileSuffix(f, constants.CsvFileSuffix, constants.ParquetFileSuffix)
		if err = tgtClient.Put(ctx, targetKey, pq); err != nil {
			return errors.Wrapf(err, "error uploading %v", target.ObjectURL(targetKey))
		}
		log.Info("uploaded ", f, " as Parquet to ", target.ObjectURL(targetKey))
	}
	return nil
}
