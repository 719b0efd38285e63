package catalog

import (
	"context"

	dataplex "cloud.google.com/go/dataplex/apiv1"
	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
)

// NewAPI returns an API backed by the real Dataplex service client.
func NewAPI(ctx context.Context) (API, error) {
	c, err := dataplex.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &apiClient{c: c}, nil
}

type apiClient struct {
	c *dataplex.Client
}

func (a *apiClient) CreateLake(ctx context.Context, req *dataplexpb.CreateLakeRequest) (*dataplexpb.Lake, error) {
	op, err := a.c.CreateLake(ctx, req)
	if err != nil {
		return nil, err
	}
	return op.Wait(ctx)
}

func (a *apiClient) GetLake(ctx context.Context, req *dataplexpb.GetLakeRequest) (*dataplexpb.Lake, error) {
	return a.c.GetLake(ctx, req)
}

func (a *apiClient) CreateZone(ctx context.Context, req *dataplexpb.CreateZoneRequest) (*dataplexpb.Zone, error) {
	op, err := a.c.CreateZone(ctx, req)
	if err != nil {
		return nil, err
	}
	return op.Wait(ctx)
}

func (a *apiClient) GetZone(ctx context.Context, req *dataplexpb.GetZoneRequest) (*dataplexpb.Zone, error) {
	return a.c.GetZone(ctx, req)
}

func (a *apiClient) CreateAsset(ctx context.Context, req *dataplexpb.CreateAssetRequest) (*dataplexpb.Asset, error) {
	op, err := a.c.CreateAsset(ctx, req)
	if err != nil {
		return nil, err
	}
	return op.Wait(ctx)
}

func (a *apiClient) GetAsset(ctx context.Context, req *dataplexpb.GetAssetRequest) (*dataplexpb.Asset, error) {
	return a.c.GetAsset(ctx, req)
}

func (a *apiClient) Close() error {
	return a.c.Close()
}
