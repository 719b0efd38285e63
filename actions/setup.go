package actions

import (
	"fmt"
	"time"

	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/helper"
)

type SetupConfig struct {
	LogLevel             string `errorTxt:"log level" mandatory:"yes"`
	StackDumpOnPanic     bool
	ProjectID            string `errorTxt:"GCP project ID" mandatory:"yes"`
	Region               string `errorTxt:"GCP region" mandatory:"yes"`
	Bucket               string `errorTxt:"GCS bucket" mandatory:"yes"`
	UploadPrefix         string `errorTxt:"upload prefix" mandatory:"yes"`
	SourceDir            string // optional local CSV directory to upload first
	LakeID               string `errorTxt:"lake ID" mandatory:"yes"`
	LakeDisplayName      string `errorTxt:"lake display name" mandatory:"yes"`
	ZoneID               string `errorTxt:"zone ID" mandatory:"yes"`
	ZoneDisplayName      string `errorTxt:"zone display name" mandatory:"yes"`
	AssetID              string `errorTxt:"asset ID" mandatory:"yes"`
	DatasetID            string `errorTxt:"BigQuery dataset ID" mandatory:"yes"`
	CsvFiles             []string
	DiscoveryWaitSeconds int
	DryRun               bool
	GcsClientFactory     GcsClientFactory
	CatalogAPIFactory    CatalogAPIFactory
	BqAPIFactory         BqAPIFactory
}

// RunSetup performs the end-to-end provisioning sequence: an optional local
// CSV upload, the Dataplex lake/zone/asset, a pause for asset discovery and
// finally the BigQuery dataset with its external tables. Each stage must
// succeed before the next runs.
func RunSetup(cfg *SetupConfig) error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	log := newLogger(cfg.LogLevel, cfg.StackDumpOnPanic)
	cfg.ProjectID = helper.GetGcpProject(cfg.ProjectID)
	if err := helper.ValidateStructIsPopulated(cfg); err != nil {
		return err
	}
	uploadURL := fmt.Sprintf("%v%v/%v", constants.GcsURLScheme, cfg.Bucket, cfg.UploadPrefix)
	if cfg.SourceDir != "" {
		if len(cfg.CsvFiles) == 0 { // if no explicit file list then table creation follows the directory contents...
			files, err := listCsvFiles(cfg.SourceDir)
			if err != nil {
				return err
			}
			cfg.CsvFiles = files
		}
		err := RunCpUpload(&CpUploadConfig{
			LogLevel:         cfg.LogLevel,
			StackDumpOnPanic: cfg.StackDumpOnPanic,
			SourceDir:        cfg.SourceDir,
			TargetURL:        uploadURL,
			GcsClientFactory: cfg.GcsClientFactory,
		})
		if err != nil {
			return err
		}
	}
	err := RunCreateCatalog(&CreateCatalogConfig{
		LogLevel:          cfg.LogLevel,
		StackDumpOnPanic:  cfg.StackDumpOnPanic,
		ProjectID:         cfg.ProjectID,
		Region:            cfg.Region,
		Bucket:            cfg.Bucket,
		LakeID:            cfg.LakeID,
		LakeDisplayName:   cfg.LakeDisplayName,
		ZoneID:            cfg.ZoneID,
		ZoneDisplayName:   cfg.ZoneDisplayName,
		AssetID:           cfg.AssetID,
		DryRun:            cfg.DryRun,
		CatalogAPIFactory: cfg.CatalogAPIFactory,
	})
	if err != nil {
		return err
	}
	if !cfg.DryRun && cfg.DiscoveryWaitSeconds > 0 {
		// A fixed pause is no guarantee that discovery has finished; large
		// buckets can take longer and leave the external tables empty.
		log.Warn("waiting ", cfg.DiscoveryWaitSeconds, "s for asset discovery to run - this is a fixed pause, not a completion check")
		time.Sleep(time.Duration(cfg.DiscoveryWaitSeconds) * time.Second)
	}
	return RunCreateTables(&CreateTablesConfig{
		LogLevel:         cfg.LogLevel,
		StackDumpOnPanic: cfg.StackDumpOnPanic,
		ProjectID:        cfg.ProjectID,
		Region:           cfg.Region,
		DatasetID:        cfg.DatasetID,
		SourceURL:        uploadURL,
		CsvFiles:         cfg.CsvFiles,
		DryRun:           cfg.DryRun,
		BqAPIFactory:     cfg.BqAPIFactory,
	})
}
