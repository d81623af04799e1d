package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uron802/api-diff-checker/internal/actions"
)

var compareVerbose bool

var compareCmd = &cobra.Command{
	Use:   "compare <dir1> <dir2>",
	Short: "Compare two directories of captured API responses",
	Long: `Compare pairs the same-named files of two response directories and
reports, per file, whether the responses match, differ structurally, or
are missing on either side. Differences are findings, not failures: the
command exits 0 unless an argument is missing or a directory does not
exist.

Examples:
  ./bin/api-diff-checker compare apiResponses/v1 apiResponses/v2`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		log := newLogger(compareVerbose)

		if err := actions.Compare(log, args[0], args[1]); err != nil {
			return fmt.Errorf("compare failed: %w", err)
		}

		return nil
	},
}

func init() {
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(compareCmd)
}
