package actions

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/lakepipe/lakepipe/gcp/gcs"
	"github.com/lakepipe/lakepipe/helper"
)

type CpUploadConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
	SourceDir        string `errorTxt:"local CSV directory" mandatory:"yes"`
	TargetURL        string `errorTxt:"target gs://<bucket>[/<prefix>]" mandatory:"yes"`
	GcsClientFactory GcsClientFactory
}

// RunCpUpload uploads every CSV file found in SourceDir to the target bucket
// prefix. Each file is uploaded exactly once; the first failure aborts.
func RunCpUpload(cfg *CpUploadConfig) error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	log := newLogger(cfg.LogLevel, cfg.StackDumpOnPanic)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	target, err := gcs.ParseGsURL(cfg.TargetURL)
	if err != nil {
		return err
	}
	csvFiles, err := listCsvFiles(cfg.SourceDir)
	if err != nil {
		return err
	}
	if len(csvFiles) == 0 {
		return errors.Errorf("no CSV files found in %q", cfg.SourceDir)
	}
	ctx := context.Background()
	client, err := getGcsClientFactory(cfg.GcsClientFactory)(ctx, target.Name, target.Prefix)
	if err != nil {
		return errors.Wrap(err, "error creating storage client")
	}
	runID := xid.New().String()
	log.Info("uploading ", len(csvFiles), " CSV files from ", cfg.SourceDir, " to ", target.URL(), " (run ", runID, ")")
	for _, f := range csvFiles {
		localPath := filepath.Join(cfg.SourceDir, f)
		fh, err := os.Open(localPath)
		if err != nil {
			return errors.Wrapf(err, "unable to open %v", localPath)
		}
		if err = client.BufferPut(ctx, f, fh); err != nil {
			_ = fh.Close()
			return errors.Wrapf(err, "error uploading %v", localPath)
		}
		if err = fh.Close(); err != nil {
			return errors.Wrapf(err, "unable to close %v", localPath)
		}
		log.Info("uploaded ", localPath, " to ", target.ObjectURL(f))
	}
	return nil
}
