package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lakepipe/lakepipe/actions"
	"github.com/lakepipe/lakepipe/constants"
	"github.com/lakepipe/lakepipe/helper"
)

var setupCfg = actions.SetupConfig{}
var setupCsvFiles string
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision the full CSV landing stack in one pass",
	Long: `Run the full provisioning sequence against a bucket of CSV files:

- Optionally upload a local directory of CSV files first (see 'source-dir')
- Create the Dataplex lake, raw zone and bucket asset
- Pause for asset discovery to run
- Create the BigQuery dataset and one external table per CSV file

Each stage must succeed before the next runs. Resources that already exist
are reused, so the command can be re-run after a failure.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		setupCfg.StackDumpOnPanic = stackDumpOnPanic
		setupCfg.CsvFiles = helper.CsvFilesFromTokens(setupCsvFiles)
		return actions.RunSetup(&setupCfg)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.Flags().SortFlags = false
	switches.addFlag(setupCmd, &setupCfg.ProjectID, "project", "", false, "")
	switches.addFlag(setupCmd, &setupCfg.Region, "region", constants.DefaultRegion, false, "")
	switches.addFlag(setupCmd, &setupCfg.Bucket, "bucket", "", true, "")
	switches.addFlag(setupCmd, &setupCfg.UploadPrefix, "upload-prefix", constants.DefaultUploadPrefix, false, "")
	switches.addFlag(setupCmd, &setupCfg.SourceDir, "source-dir", "", false, "")
	switches.addFlag(setupCmd, &setupCfg.LakeID, "lake", constants.DefaultLakeID, false, "")
	switches.addFlag(setupCmd, &setupCfg.LakeDisplayName, "lake-name", constants.DefaultLakeDisplayName, false, "")
	switches.addFlag(setupCmd, &setupCfg.ZoneID, "zone", constants.DefaultZoneID, false, "")
	switches.addFlag(setupCmd, &setupCfg.ZoneDisplayName, "zone-name", constants.DefaultZoneDisplayName, false, "")
	switches.addFlag(setupCmd, &setupCfg.AssetID, "asset", constants.DefaultAssetID, false, "")
	switches.addFlag(setupCmd, &setupCfg.DatasetID, "dataset", constants.DefaultDatasetID, false, "")
	switches.addFlag(setupCmd, &setupCsvFiles, "csv-files", "", false, "")
	switches.addFlag(setupCmd, &setupCfg.DiscoveryWaitSeconds, "discovery-wait", strconv.Itoa(constants.DefaultDiscoveryWaitSeconds), false, "")
	switches.addFlag(setupCmd, &setupCfg.DryRun, "dry-run", "", false, "")
	switches.addFlag(setupCmd, &setupCfg.LogLevel, "log-level", "info", false, "")
}
