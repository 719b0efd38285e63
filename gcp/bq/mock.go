package bq

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"
)

// MockAPI is an in-memory API for tests.
// It reports HTTP 409 for duplicate creates and 404 for missing resources,
// matching the real service. Error fields, when set, are returned by the
// matching create method instead.
type MockAPI struct {
	Datasets map[string]*bigquery.DatasetMetadata
	Tables   map[string]*bigquery.TableMetadata

	CreateDatasetCalls int
	GetDatasetCalls    int
	CreateTableCalls   int
	GetTableCalls      int

	CreateDatasetErr error
	CreateTableErr   error
}

func NewMockAPI() *MockAPI {
	return &MockAPI{
		Datasets: make(map[string]*bigquery.DatasetMetadata),
		Tables:   make(map[string]*bigquery.TableMetadata),
	}
}

func (m *MockAPI) CreateDataset(ctx context.Context, datasetID string, md *bigquery.DatasetMetadata) error {
	m.CreateDatasetCalls++
	if m.CreateDatasetErr != nil {
		return m.CreateDatasetErr
	}
	if _, ok := m.Datasets[datasetID]; ok {
		return &googleapi.Error{Code: http.StatusConflict, Message: "dataset already exists"}
	}
	m.Datasets[datasetID] = md
	return nil
}

func (m *MockAPI) GetDataset(ctx context.Context, datasetID string) (*bigquery.DatasetMetadata, error) {
	m.GetDatasetCalls++
	md, ok := m.Datasets[datasetID]
	if !ok {
		return nil, &googleapi.Error{Code: http.StatusNotFound, Message: "dataset not found"}
	}
	return md, nil
}

func (m *MockAPI) CreateTable(ctx context.Context, datasetID, tableID string, md *bigquery.TableMetadata) error {
	m.CreateTableCalls++
	if m.CreateTableErr != nil {
		return m.CreateTableErr
	}
	key := tableKey(datasetID, tableID)
	if _, ok := m.Tables[key]; ok {
		return &googleapi.Error{Code: http.StatusConflict, Message: "table already exists"}
	}
	m.Tables[key] = md
	return nil
}

func (m *MockAPI) GetTable(ctx context.Context, datasetID, tableID string) (*bigquery.TableMetadata, error) {
	m.GetTableCalls++
	md, ok := m.Tables[tableKey(datasetID, tableID)]
	if !ok {
		return nil, &googleapi.Error{Code: http.StatusNotFound, Message: "table not found"}
	}
	return md, nil
}

func (m *MockAPI) Close() error {
	return nil
}

func tableKey(datasetID, tableID string) string {
	return fmt.Sprintf("%v.%v", datasetID, tableID)
}
