package actions

import (
	"context"
	"fmt"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/lakepipe/lakepipe/gcp/catalog"
	"github.com/lakepipe/lakepipe/helper"
)

type CreateCatalogConfig struct {
	LogLevel          string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic  bool
	ProjectID         string `errorTxt:"GCP project ID" mandatory:"yes"`
	Region            string `errorTxt:"GCP region" mandatory:"yes"`
	Bucket            string `errorTxt:"GCS bucket" mandatory:"yes"`
	LakeID            string `errorTxt:"lake ID" mandatory:"yes"`
	LakeDisplayName   string `errorTxt:"lake display name" mandatory:"yes"`
	ZoneID            string `errorTxt:"zone ID" mandatory:"yes"`
	ZoneDisplayName   string `errorTxt:"zone display name" mandatory:"yes"`
	AssetID           string `errorTxt:"asset ID" mandatory:"yes"`
	DryRun            bool
	CatalogAPIFactory CatalogAPIFactory
}

// catalogPlan is the dry-run description of what RunCreateCatalog would build.
type catalogPlan struct {
	ProjectID string `json:"projectId"`
	Region    string `json:"region"`
	Lake      string `json:"lake"`
	Zone      string `json:"zone"`
	Asset     string `json:"asset"`
	Bucket    string `json:"bucket"`
}

// RunCreateCatalog provisions the Dataplex lake, zone and asset over the
// given bucket, reusing any of the three that already exist. Resources
// created before a failure are left in place.
func RunCreateCatalog(cfg *CreateCatalogConfig) error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	log := newLogger(cfg.LogLevel, cfg.StackDumpOnPanic)
	cfg.ProjectID = helper.GetGcpProject(cfg.ProjectID)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	if cfg.DryRun {
		plan := catalogPlan{
			ProjectID: cfg.ProjectID,
			Region:    cfg.Region,
			Lake:      cfg.LakeID,
			Zone:      cfg.ZoneID,
			Asset:     cfg.AssetID,
			Bucket:    cfg.Bucket,
		}
		out, err := yaml.Marshal(&plan)
		if err != nil {
			return errors.Wrap(err, "error marshalling dry-run plan")
		}
		fmt.Print(string(out))
		return nil
	}
	ctx := context.Background()
	api, err := getCatalogAPIFactory(cfg.CatalogAPIFactory)(ctx)
	if err != nil {
		return errors.Wrap(err, "error creating Dataplex client")
	}
	defer func() { _ = api.Close() }()
	if _, err = catalog.EnsureLake(ctx, log, api, cfg.ProjectID, cfg.Region, cfg.LakeID, cfg.LakeDisplayName); err != nil {
		return err
	}
	if _, err = catalog.EnsureZone(ctx, log, api, cfg.ProjectID, cfg.Region, cfg.LakeID, cfg.ZoneID, cfg.ZoneDisplayName); err != nil {
		return err
	}
	if _, err = catalog.EnsureAsset(ctx, log, api, cfg.ProjectID, cfg.Region, cfg.LakeID, cfg.ZoneID, cfg.AssetID, cfg.Bucket); err != nil {
		return err
	}
	log.Info("Dataplex catalog resources are in place for bucket ", cfg.Bucket)
	return nil
}
