package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakepipe/lakepipe/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure default flag values",
	Long: fmt.Sprintf(`Configure default parameters where:

- Default flag values are stored in file %q
`, config.Main.FullPath),
}

func init() {
	rootCmd.AddCommand(configCmd)
}
