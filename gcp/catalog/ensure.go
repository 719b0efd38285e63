package catalog

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/dataplex/apiv1/dataplexpb"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/logger"
)

// EnsureLake creates a Dataplex lake, or fetches the existing one when
// creation reports a conflict. Any other error propagates to the caller.
func EnsureLake(ctx context.Context, log logger.Logger, api API, projectID, region, lakeID, displayName string) (*dataplexpb.Lake, error) {
	parent := lakeParent(projectID, region)
	log.Info("creating lake ", lakeID, "...")
	lake, err := api.CreateLake(ctx, &dataplexpb.CreateLakeRequest{
		Parent: parent,
		LakeId: lakeID,
		Lake:   &dataplexpb.Lake{DisplayName: displayName},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists { // if the lake exists then reuse it...
			log.Info("lake ", lakeID, " already exists")
			return api.GetLake(ctx, &dataplexpb.GetLakeRequest{Name: fmt.Sprintf("%v/lakes/%v", parent, lakeID)})
		}
		return nil, errors.Wrapf(err, "error creating lake %v", lakeID)
	}
	log.Info("lake ", lake.GetName(), " created successfully")
	return lake, nil
}

// EnsureZone creates a RAW zone under the given lake with CSV discovery
// enabled, or fetches the existing zone on conflict.
func EnsureZone(ctx context.Context, log logger.Logger, api API, projectID, region, lakeID, zoneID, displayName string) (*dataplexpb.Zone, error) {
	parent := fmt.Sprintf("%v/lakes/%v", lakeParent(projectID, region), lakeID)
	locationType := dataplexpb.Zone_ResourceSpec_SINGLE_REGION
	if strings.Contains(region, "us") || strings.Contains(region, "eu") {
		locationType = dataplexpb.Zone_ResourceSpec_MULTI_REGION
	}
	zone := &dataplexpb.Zone{
		DisplayName: displayName,
		Type:        dataplexpb.Zone_RAW,
		ResourceSpec: &dataplexpb.Zone_ResourceSpec{
			LocationType: locationType,
		},
		DiscoverySpec: &dataplexpb.Zone_DiscoverySpec{
			Enabled: true,
			CsvOptions: &dataplexpb.Zone_DiscoverySpec_CsvOptions{
				HeaderRows:           constants.CsvHeaderRows,
				Delimiter:            constants.CsvDelimiter,
				DisableTypeInference: false,
			},
		},
	}
	log.Info("creating zone ", zoneID, "...")
	z, err := api.CreateZone(ctx, &dataplexpb.CreateZoneRequest{
		Parent: parent,
		ZoneId: zoneID,
		Zone:   zone,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists { // if the zone exists then reuse it...
			log.Info("zone ", zoneID, " already exists")
			return api.GetZone(ctx, &dataplexpb.GetZoneRequest{Name: fmt.Sprintf("%v/zones/%v", parent, zoneID)})
		}
		return nil, errors.Wrapf(err, "error creating zone %v", zoneID)
	}
	log.Info("zone ", z.GetName(), " created successfully")
	return z, nil
}

// EnsureAsset creates an asset mapping the given GCS bucket into the zone
// with CSV discovery enabled, or fetches the existing asset on conflict.
// Discovery publishes entities for the bucket contents asynchronously after
// this call returns.
func EnsureAsset(ctx context.Context, log logger.Logger, api API, projectID, region, lakeID, zoneID, assetID, bucket string) (*dataplexpb.Asset, error) {
	parent := fmt.Sprintf("%v/lakes/%v/zones/%v", lakeParent(projectID, region), lakeID, zoneID)
	asset := &dataplexpb.Asset{
		DisplayName: assetID,
		ResourceSpec: &dataplexpb.Asset_ResourceSpec{
			Type: dataplexpb.Asset_ResourceSpec_STORAGE_BUCKET,
			Name: fmt.Sprintf("projects/%v/buckets/%v", projectID, bucket),
		},
		DiscoverySpec: &dataplexpb.Asset_DiscoverySpec{
			Enabled: true,
			CsvOptions: &dataplexpb.Asset_DiscoverySpec_CsvOptions{
				HeaderRows:           constants.CsvHeaderRows,
				Delimiter:            constants.CsvDelimiter,
				DisableTypeInference: false,
			},
		},
	}
	log.Info("creating asset ", assetID, "...")
	a, err := api.CreateAsset(ctx, &dataplexpb.CreateAssetRequest{
		Parent:  parent,
		AssetId: assetID,
		Asset:   asset,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists { // if the asset exists then reuse it...
			log.Info("asset ", assetID, " already exists")
			return api.GetAsset(ctx, &dataplexpb.GetAssetRequest{Name: fmt.Sprintf("%v/assets/%v", parent, assetID)})
		}
		return nil, errors.Wrapf(err, "error creating asset %v", assetID)
	}
	log.Info("asset ", a.GetName(), " created successfully")
	return a, nil
}

func lakeParent(projectID, region string) string {
	return fmt.Sprintf("projects/%v/locations/%v", projectID, region)
}
