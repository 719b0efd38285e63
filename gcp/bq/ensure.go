package bq

import (
	"context"
	"net/http"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"

	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/logger"
)

// EnsureDataset creates the dataset in the given location, treating a
// conflict as success. Any other error propagates to the caller.
func EnsureDataset(ctx context.Context, log logger.Logger, api API, datasetID, location string) error {
	err := api.CreateDataset(ctx, datasetID, &bigquery.DatasetMetadata{Location: location})
	if err != nil {
		if isStatus(err, http.StatusConflict) { // if the dataset exists then reuse it...
			log.Info("BigQuery dataset ", datasetID, " already exists")
			_, err = api.GetDataset(ctx, datasetID)
			return errors.Wrapf(err, "error fetching existing BigQuery dataset %v", datasetID)
		}
		return errors.Wrapf(err, "error creating BigQuery dataset %v", datasetID)
	}
	log.Info("BigQuery dataset ", datasetID, " created")
	return nil
}

// EnsureExternalTable defines an external table over the CSV object at
// sourceURI with schema autodetection, skipping the header row.
// A table that already exists is left untouched.
func EnsureExternalTable(ctx context.Context, log logger.Logger, api API, datasetID, tableID, sourceURI string) error {
	// Check the existence of the table first.
	if _, err := api.GetTable(ctx, datasetID, tableID); err == nil {
		log.Info("BigQuery table ", tableID, " already exists - skipping creation")
		return nil
	} else if !isStatus(err, http.StatusNotFound) {
		return errors.Wrapf(err, "error checking BigQuery table %v", tableID)
	}

	log.Info("creating BigQuery external table ", tableID, " from ", sourceURI, "...")
	md := &bigquery.TableMetadata{
		ExternalDataConfig: &bigquery.ExternalDataConfig{
			SourceFormat:  bigquery.CSV,
			SourceURIs:    []string{sourceURI},
			AutoDetect:    true,
			MaxBadRecords: 0,
			Options: &bigquery.CSVOptions{
				SkipLeadingRows: constants.CsvHeaderRows,
			},
		},
	}
	if err := api.CreateTable(ctx, datasetID, tableID, md); err != nil {
		if isStatus(err, http.StatusConflict) { // if the table appeared since the check...
			log.Info("BigQuery table ", tableID, " already exists")
			return nil
		}
		return errors.Wrapf(err, "error creating BigQuery external table %v", tableID)
	}
	log.Info("BigQuery external table ", tableID, " created successfully")
	return nil
}

func isStatus(err error, code int) bool {
	apiErr, ok := err.(*googleapi.Error)
	return ok && apiErr.Code == code
}
