package actions

import (
	"context"

	"github.com/lakepipe/lakepipe/gcp/bq"
	"github.com/lakepipe/lakepipe/gcp/catalog"
	"github.com/lakepipe/lakepipe/gcp/gcs"
)

// Factory funcs let tests substitute in-memory service clients.
// A nil factory selects the real client.

type GcsClientFactory func(ctx context.Context, bucket, prefix string) (gcs.Client, error)

type CatalogAPIFactory func(ctx context.Context) (catalog.API, error)

type BqAPIFactory func(ctx context.Context, projectID string) (bq.API, error)
