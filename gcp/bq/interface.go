package bq

import (
	"context"

	"cloud.google.com/go/bigquery"
)

// API is the subset of BigQuery administration used by lakepipe.
type API interface {
	CreateDataset(ctx context.Context, datasetID string, md *bigquery.DatasetMetadata) error
	GetDataset(ctx context.Context, datasetID string) (*bigquery.DatasetMetadata, error)
	CreateTable(ctx context.Context, datasetID, tableID string, md *bigquery.TableMetadata) error
	GetTable(ctx context.Context, datasetID, tableID string) (*bigquery.TableMetadata, error)
	Close() error
}
