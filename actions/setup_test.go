package actions

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lakepipe/lakepipe/gcp/bq"
	"github.com/lakepipe/lakepipe/gcp/catalog"
	"github.com/lakepipe/lakepipe/gcp/gcs"
)

func newSetupConfig(g *gcs.MockBasicClient, c *catalog.MockAPI, b *bq.MockAPI) *SetupConfig {
	return &SetupConfig{
		LogLevel:        "error",
		ProjectID:       "demo-project",
		Region:          "us-central1",
		Bucket:          "demo-lnd-cs-0",
		UploadPrefix:    "csv_data",
		LakeID:          "my-csv-lake",
		LakeDisplayName: "My CSV Data Lake",
		ZoneID:          "raw-csv-data",
		ZoneDisplayName: "Raw CSV Zone",
		AssetID:         "csv-files-asset",
		DatasetID:       "raw_csv_data_bq",
		GcsClientFactory: newMockGcsFactory(map[string]*gcs.MockBasicClient{
			"demo-lnd-cs-0": g,
		}),
		CatalogAPIFactory: func(ctx context.Context) (catalog.API, error) { return c, nil },
		BqAPIFactory:      func(ctx context.Context, projectID string) (bq.API, error) { return b, nil },
	}
}

func TestRunSetup(t *testing.T) {
	dir := t.TempDir()
	writeTestFiles(t, dir, "patients.csv", "care-plans.csv")
	g := gcs.NewMockBasicClient()
	c := catalog.NewMockAPI()
	b := bq.NewMockAPI()

	cfg := newSetupConfig(g, c, b)
	cfg.SourceDir = dir
	if err := RunSetup(cfg); err != nil {
		t.Fatal("unexpected error: ", err)
	}
	if len(g.Objects) != 2 {
		t.Fatalf("got %v uploaded objects; expected 2", len(g.Objects))
	}
	if len(c.Lakes) != 1 || len(c.Zones) != 1 || len(c.Assets) != 1 {
		t.Fatal("expected the full catalog to be provisioned")
	}
	// The table set must follow the directory contents, not the default list.
	if len(b.Tables) != 2 {
		t.Fatalf("got %v tables; expected one per uploaded file", len(b.Tables))
	}
	if _, ok := b.Tables["raw_csv_data_bq.care_plans"]; !ok {
		t.Fatalf("expected table care_plans; got %v", b.Tables)
	}
}

func TestRunSetupWithoutUpload(t *testing.T) {
	g := gcs.NewMockBasicClient()
	c := catalog.NewMockAPI()
	b := bq.NewMockAPI()

	cfg := newSetupConfig(g, c, b)
	if err := RunSetup(cfg); err != nil {
		t.Fatal("unexpected error: ", err)
	}
	if len(g.Objects) != 0 {
		t.Fatal("no uploads expected without a source directory")
	}
	if len(b.Tables) != 18 {
		t.Fatalf("got %v tables; expected the default CSV file list", len(b.Tables))
	}
}

func TestRunSetupHaltsOnCatalogFailure(t *testing.T) {
	g := gcs.NewMockBasicClient()
	c := catalog.NewMockAPI()
	c.CreateLakeErr = status.Errorf(codes.PermissionDenied, "nope")
	b := bq.NewMockAPI()

	cfg := newSetupConfig(g, c, b)
	cfg.BqAPIFactory = func(ctx context.Context, projectID string) (bq.API, error) {
		t.Fatal("table creation must not run after a catalog failure")
		return nil, nil
	}
	if err := RunSetup(cfg); err == nil {
		t.Fatal("expected the catalog error to propagate")
	}
	if b.CreateDatasetCalls != 0 {
		t.Fatal("no dataset work expected after a catalog failure")
	}
}
