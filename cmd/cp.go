package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lakepipe/lakepipe/actions"
	"github.com/lakepipe/lakepipe/helper"
)

var cpCmd = &cobra.Command{
	Use:   "cp",
	Short: "Copy CSV files into GCS or convert them to Parquet",
	Long: `Copy data into and between GCS locations:

- Upload a local directory of CSV files to a bucket prefix
- Convert landed CSV objects to Parquet under a new prefix
`,
}

func init() {
	rootCmd.AddCommand(cpCmd)
	initCpUpload()
	initCpParquet()
}

// UPLOAD SETUP

var cpUploadCfg = actions.CpUploadConfig{}
var cpUploadCmd = &cobra.Command{
	Use:   "upload <local-dir> gs://<bucket>[/<prefix>]",
	Short: "Upload a local directory of CSV files to a GCS bucket prefix",
	Long: `Upload every *.csv file found in <local-dir> to the given bucket prefix:

- Files upload one at a time and the first failure aborts
- Non-CSV files in the directory are ignored
`,
	Args: getDirAndGsURLArgsFunc(&cpUploadCfg.SourceDir, &cpUploadCfg.TargetURL),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cpUploadCfg.StackDumpOnPanic = stackDumpOnPanic
		return actions.RunCpUpload(&cpUploadCfg)
	},
}

func initCpUpload() {
	cpCmd.AddCommand(cpUploadCmd)
	cpUploadCmd.Flags().SortFlags = false
	switches.addFlag(cpUploadCmd, &cpUploadCfg.LogLevel, "log-level", "info", false, "")
}

// PARQUET SETUP

var cpParquetCfg = actions.CpParquetConfig{}
var cpParquetCsvFiles string
var cpParquetCmd = &cobra.Command{
	Use:   "parquet gs://<source-bucket>[/<prefix>] gs://<target-bucket>[/<prefix>]",
	Short: "Convert CSV objects under the source prefix to Parquet under the target prefix",
	Long: `Convert each named CSV object to Parquet with Snappy compression:

- Column types are inferred from the CSV content
- Target object names mirror the source names with a .parquet suffix
- The first failure aborts the remaining files
`,
	Args: getGsURLPairArgsFunc(&cpParquetCfg.SourceURL, &cpParquetCfg.TargetURL),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		cpParquetCfg.StackDumpOnPanic = stackDumpOnPanic
		cpParquetCfg.CsvFiles = helper.CsvFilesFromTokens(cpParquetCsvFiles)
		return actions.RunCpParquet(&cpParquetCfg)
	},
}

func initCpParquet() {
	cpCmd.AddCommand(cpParquetCmd)
	cpParquetCmd.Flags().SortFlags = false
	switches.addFlag(cpParquetCmd, &cpParquetCsvFiles, "csv-files", "", false, "")
	switches.addFlag(cpParquetCmd, &cpParquetCfg.LogLevel, "log-level", "info", false, "")
}
