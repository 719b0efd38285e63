package actions

import (
	"context"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/lakepipe/lakepipe/gcp/bq"
	"github.com/lakepipe/lakepipe/gcp/gcs"
	"github.com/lakepipe/lakepipe/helper"
)

type CreateTablesConfig struct {
	LogLevel         string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic bool
	ProjectID        string `errorTxt:"GCP project ID" mandatory:"yes"`
	Region           string `errorTxt:"GCP region" mandatory:"yes"`
	DatasetID        string `errorTxt:"BigQuery dataset ID" mandatory:"yes"`
	SourceURL        string `errorTxt:"source gs://<bucket>[/<prefix>]" mandatory:"yes"`
	CsvFiles         []string
	DryRun           bool
	BqAPIFactory     BqAPIFactory
}

type tablesPlan struct {
	ProjectID string            `json:"projectId"`
	Dataset   string            `json:"dataset"`
	Location  string            `json:"location"`
	Tables    map[string]string `json:"tables"`
}

// RunCreateTables creates the BigQuery dataset and one external table per
// CSV object under the source prefix. Table names derive from the object
// names. Existing resources are reused and the first failure aborts.
func RunCreateTables(cfg *CreateTablesConfig) error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	log := newLogger(cfg.LogLevel, cfg.StackDumpOnPanic)
	cfg.ProjectID = helper.GetGcpProject(cfg.ProjectID)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	source, err := gcs.ParseGsURL(cfg.SourceURL)
	if err != nil {
		return err
	}
	csvFiles := getCsvFiles(cfg.CsvFiles)
	if cfg.DryRun {
		plan := tablesPlan{
			ProjectID: cfg.ProjectID,
			Dataset:   cfg.DatasetID,
			Location:  cfg.Region,
			Tables:    make(map[string]string, len(csvFiles)),
		}
		for _, f := range csvFiles {
			plan.Tables[helper.TableNameFromObjectKey(f)] = source.ObjectURL(f)
		}
		out, err := yaml.Marshal(&plan)
		if err != nil {
			return errors.Wrap(err, "error marshalling dry-run plan")
		}
		fmt.Print(string(out))
		return nil
	}
	ctx := context.Background()
	api, err := getBqAPIFactory(cfg.BqAPIFactory)(ctx, cfg.ProjectID)
	if err != nil {
		return errors.Wrap(err, "error creating BigQuery client")
	}
	defer func() { _ = api.Close() }()
	if err = bq.EnsureDataset(ctx, log, api, cfg.DatasetID, cfg.Region); err != nil {
		return err
	}
	for _, f := range csvFiles {
		tableID := helper.TableNameFromObjectKey(f)
		if err = bq.EnsureExternalTable(ctx, log, api, cfg.DatasetID, tableID, source.ObjectURL(f)); err != nil {
			return err
		}
	}
	log.Info("BigQuery dataset ", cfg.DatasetID, " holds external tables for ", len(csvFiles), " CSV files")
	return nil
}
