package bq

import (
	"context"

	"cloud.google.com/go/bigquery"
)

// NewAPI returns an API backed by the real BigQuery client.
func NewAPI(ctx context.Context, projectID string) (API, error) {
	c, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &apiClient{c: c}, nil
}

type apiClient struct {
	c *bigquery.Client
}

func (a *apiClient) CreateDataset(ctx context.Context, datasetID string, md *bigquery.DatasetMetadata) error {
	return a.c.Dataset(datasetID).Create(ctx, md)
}

func (a *apiClient) GetDataset(ctx context.Context, datasetID string) (*bigquery.DatasetMetadata, error) {
	return a.c.Dataset(datasetID).Metadata(ctx)
}

func (a *apiClient) CreateTable(ctx context.Context, datasetID, tableID string, md *bigquery.TableMetadata) error {
	return a.c.Dataset(datasetID).Table(tableID).Create(ctx, md)
}

func (a *apiClient) GetTable(ctx context.Context, datasetID, tableID string) (*bigquery.TableMetadata, error) {
	return a.c.Dataset(datasetID).Table(tableID).Metadata(ctx)
}

func (a *apiClient) Close() error {
	return a.c.Close()
}
