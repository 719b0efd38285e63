package catalog

import (
	"context"
	"fmt"

	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MockAPI is an in-memory API for tests.
// Created resources are stored by full name and a second create for the same
// name reports codes.AlreadyExists, matching the real service.
// Error fields, when set, are returned by the matching create method instead.
type MockAPI struct {
	Lakes  map[string]*dataplexpb.Lake
	Zones  map[string]*dataplexpb.Zone
	Assets map[string]*dataplexpb.Asset

	CreateLakeCalls  int
	GetLakeCalls     int
	CreateZoneCalls  int
	GetZoneCalls     int
	CreateAssetCalls int
	GetAssetCalls    int

	CreateLakeErr  error
	CreateZoneErr  error
	CreateAssetErr error
}

func NewMockAPI() *MockAPI {
	return &MockAPI{
		Lakes:  make(map[string]*dataplexpb.Lake),
		Zones:  make(map[string]*dataplexpb.Zone),
		Assets: make(map[string]*dataplexpb.Asset),
	}
}

func (m *MockAPI) CreateLake(ctx context.Context, req *dataplexpb.CreateLakeRequest) (*dataplexpb.Lake, error) {
	m.CreateLakeCalls++
	if m.CreateLakeErr != nil {
		return nil, m.CreateLakeErr
	}
	name := fmt.Sprintf("%v/lakes/%v", req.Parent, req.LakeId)
	if _, ok := m.Lakes[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "lake %v already exists", req.LakeId)
	}
	lake := &dataplexpb.Lake{Name: name, DisplayName: req.Lake.GetDisplayName()}
	m.Lakes[name] = lake
	return lake, nil
}

func (m *MockAPI) GetLake(ctx context.Context, req *dataplexpb.GetLakeRequest) (*dataplexpb.Lake, error) {
	m.GetLakeCalls++
	lake, ok := m.Lakes[req.Name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "lake %v not found", req.Name)
	}
	return lake, nil
}

func (m *MockAPI) CreateZone(ctx context.Context, req *dataplexpb.CreateZoneRequest) (*dataplexpb.Zone, error) {
	m.CreateZoneCalls++
	if m.CreateZoneErr != nil {
		return nil, m.CreateZoneErr
	}
	name := fmt.Sprintf("%v/zones/%v", req.Parent, req.ZoneId)
	if _, ok := m.Zones[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "zone %v already exists", req.ZoneId)
	}
	zone := &dataplexpb.Zone{
		Name:          name,
		DisplayName:   req.Zone.GetDisplayName(),
		Type:          req.Zone.GetType(),
		ResourceSpec:  req.Zone.GetResourceSpec(),
		DiscoverySpec: req.Zone.GetDiscoverySpec(),
	}
	m.Zones[name] = zone
	return zone, nil
}

func (m *MockAPI) GetZone(ctx context.Context, req *dataplexpb.GetZoneRequest) (*dataplexpb.Zone, error) {
	m.GetZoneCalls++
	zone, ok := m.Zones[req.Name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "zone %v not found", req.Name)
	}
	return zone, nil
}

func (m *MockAPI) CreateAsset(ctx context.Context, req *dataplexpb.CreateAssetRequest) (*dataplexpb.Asset, error) {
	m.CreateAssetCalls++
	if m.CreateAssetErr != nil {
		return nil, m.CreateAssetErr
	}
	name := fmt.Sprintf("%v/assets/%v", req.Parent, req.AssetId)
	if _, ok := m.Assets[name]; ok {
		return nil, status.Errorf(codes.AlreadyExists, "asset %v already exists", req.AssetId)
	}
	asset := &dataplexpb.Asset{
		Name:          name,
		DisplayName:   req.Asset.GetDisplayName(),
		ResourceSpec:  req.Asset.GetResourceSpec(),
		DiscoverySpec: req.Asset.GetDiscoverySpec(),
	}
	m.Assets[name] = asset
	return asset, nil
}

func (m *MockAPI) GetAsset(ctx context.Context, req *dataplexpb.GetAssetRequest) (*dataplexpb.Asset, error) {
	m.GetAssetCalls++
	asset, ok := m.Assets[req.Name]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "asset %v not found", req.Name)
	}
	return asset, nil
}

func (m *MockAPI) Close() error {
	return nil
}
