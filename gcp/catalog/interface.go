package catalog

import (
	"context"

	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
)

// API is the subset of the Dataplex service used by lakepipe.
// Create methods block until the underlying long-running operation completes
// and return the created resource.
type API interface {
	CreateLake(ctx context.Context, req *dataplexpb.CreateLakeRequest) (*dataplexpb.Lake, error)
	GetLake(ctx context.Context, req *dataplexpb.GetLakeRequest) (*dataplexpb.Lake, error)
	CreateZone(ctx context.Context, req *dataplexpb.CreateZoneRequest) (*dataplexpb.Zone, error)
	GetZone(ctx context.Context, req *dataplexpb.GetZoneRequest) (*dataplexpb.Zone, error)
	CreateAsset(ctx context.Context, req *dataplexpb.CreateAssetRequest) (*dataplexpb.Asset, error)
	GetAsset(ctx context.Context, req *dataplexpb.GetAssetRequest) (*dataplexpb.Asset, error)
	Close() error
}
