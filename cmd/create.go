package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakepipe/lakepipe/actions"
	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/helper"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create Dataplex catalog resources or BigQuery external tables",
	Long: `Create cloud resources over CSV files already landed in GCS:

- A Dataplex lake, raw zone and bucket asset with CSV discovery enabled
- A BigQuery dataset with one schema-autodetected external table per file
- Resources that already exist are reused, so commands can be re-run safely
`,
}

func init() {
	rootCmd.AddCommand(createCmd)
	initCreateCatalog()
	initCreateTables()
}

// CATALOG SETUP

var createCatalogCfg = actions.CreateCatalogConfig{}
var createCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Create a Dataplex lake, raw zone and asset over a GCS bucket",
	Long: `Create the Dataplex catalog resources that make a bucket discoverable:

- The zone is of type RAW with CSV discovery enabled (header row skipped)
- The asset maps the bucket into the zone
- Discovery runs asynchronously after the asset is created
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		createCatalogCfg.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunCreateCatalog(&createCatalogCfg)
	},
}

func initCreateCatalog() {
	createCmd.AddCommand(createCatalogCmd)
	createCatalogCmd.Flags().SortFlags = false
	addFlagsCatalog(createCatalogCmd, &createCatalogCfg)
	switches.addFlag(createCatalogCmd, &createCatalogCfg.DryRun, "dry-run", "", false, "")
	switches.addFlag(createCatalogCmd, &createCatalogCfg.LogLevel, "log-level", "info", false, "")
}

func addFlagsCatalog(c *cobra.Command, cfg *actions.CreateCatalogConfig) {
	switches.addFlag(c, &cfg.ProjectID, "project", "", false, "")
	switches.addFlag(c, &cfg.Region, "region", constants.DefaultRegion, false, "")
	switches.addFlag(c, &cfg.Bucket, "bucket", "", true, "")
	switches.addFlag(c, &cfg.LakeID, "lake", constants.DefaultLakeID, false, "")
	switches.addFlag(c, &cfg.LakeDisplayName, "lake-name", constants.DefaultLakeDisplayName, false, "")
	switches.addFlag(c, &cfg.ZoneID, "zone", constants.DefaultZoneID, false, "")
	switches.addFlag(c, &cfg.ZoneDisplayName, "zone-name", constants.DefaultZoneDisplayName, false, "")
	switches.addFlag(c, &cfg.AssetID, "asset", constants.DefaultAssetID, false, "")
}

// TABLES SETUP

var createTablesCfg = actions.CreateTablesConfig{}
var createTablesCsvFiles string
var createTablesCmd = &cobra.Command{
	Use:   "tables gs://<bucket>[/<prefix>]",
	Short: "Create a BigQuery dataset of external tables over CSV objects",
	Long: `Create the BigQuery dataset and one external table per CSV object:

- Table schemas are autodetected from the CSV content
- Table names derive from object names with dashes replaced by underscores
- Existing tables are left untouched
`,
	Args: getGsURLArgsFunc(&createTablesCfg.SourceURL, ""),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		createTablesCfg.StackDumpOnPanic = stackDumpOnPanic
		createTablesCfg.CsvFiles = helper.CsvFilesFromTokens(createTablesCsvFiles)
		return actions.RunCreateTables(&createTablesCfg)
	},
}

func initCreateTables() {
	createCmd.AddCommand(createTablesCmd)
	createTablesCmd.Flags().SortFlags = false
	switches.addFlag(createTablesCmd, &createTablesCfg.ProjectID, "project", "", false, "")
	switches.addFlag(createTablesCmd, &createTablesCfg.Region, "region", constants.DefaultRegion, false, "")
	switches.addFlag(createTablesCmd, &createTablesCfg.DatasetID, "dataset", constants.DefaultDatasetID, false, "")
	switches.addFlag(createTablesCmd, &createTablesCsvFiles, "csv-files", "", false, "")
	switches.addFlag(createTablesCmd, &createTablesCfg.DryRun, "dry-run", "", false, "")
	switches.addFlag(createTablesCmd, &createTablesCfg.LogLevel, "log-level", "info", false, "")
}
