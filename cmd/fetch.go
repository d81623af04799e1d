package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uron802/api-diff-checker/internal/actions"
)

var fetchVerbose bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <version> <configFilePath>",
	Short: "Fetch configured API responses and save them under a version label",
	Long: `Fetch executes every API call listed in the config file, in order, and
saves each JSON response to <OUTPUT_DIR>/<version>/<api-name>.json, along
with a response_times.csv timing report.

A failing endpoint is logged and skipped; the batch continues and the
command still exits 0. Only missing arguments or an unloadable config
file fail the command.

Examples:
  ./bin/api-diff-checker fetch v1 config/apis.json
  ./bin/api-diff-checker fetch v2 config/apis.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		log := newLogger(fetchVerbose)

		if err := actions.Fetch(context.Background(), log, args[0], args[1]); err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}

		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(fetchCmd)
}
