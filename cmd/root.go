package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Logger is the shared logger instance for all commands
	Logger *logrus.Logger

	envFile string

	rootCmd = &cobra.Command{
		Use:   "api-diff-checker",
		Short: "API Diff Checker - capture and compare API responses across versions",
		Long: `API Diff Checker captures the JSON responses of a configured set of API
endpoints under a version label, and structurally compares two captured
versions to surface what changed.

Run without arguments to launch interactive mode, or use subcommands for direct operations.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if envFile == "" {
				return nil
			}

			if err := godotenv.Load(envFile); err != nil {
				return fmt.Errorf("failed to load env file '%s': %w", envFile, err)
			}

			// Re-read LOG_LEVEL in case the file changed it.
			InitLogger()

			return nil
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// InitLogger builds the shared logger from the LOG_LEVEL environment
// variable, defaulting to info.
func InitLogger() {
	Logger = logrus.New()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Can't use Logger here since it might not be set up yet
		fmt.Printf("Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// newLogger returns a command-scoped logger honoring the --verbose flag.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(Logger.GetLevel())

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func init() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Initialize the shared logger
	InitLogger()

	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "environment file to load instead of .env")
}
