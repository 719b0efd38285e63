package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version          = "0.1.0"
	buildDate        = "2020-01-02T03:04+0500"
	stackDumpOnPanic bool
)

var rootCmd = &cobra.Command{
	Use: "lp",
	Long: `
.____          __            __________.__
|    |   _____|  | __ ____   \______   \__|_____   ____
|    |   \__  \  |/ // __ \   |     ___/  \____ \_/ __ \
|    |___ / __ \    <\  ___/  |    |   |  |  |_> >  ___/
|_______ (____  /__|_ \___  > |____|   |__|   __/ \___  >
        \/    \/     \/   \/              |__|        \/

LakePipe is a small utility for landing CSV files in Google Cloud Storage and
making them queryable. Upload files, convert them to Parquet, register the
bucket as a Dataplex lake asset and expose each file as a BigQuery external
table - one command at a time or all at once with 'setup'.`,
}

func init() {
	// General setup.
	cobra.EnableCommandSorting = false
	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Execute() prints the error.
		os.Exit(1)
	}
}
