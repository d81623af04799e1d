// Package main is the entry point for the api-diff-checker application
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/uron802/api-diff-checker/cmd"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	envFile, runTUI := parseArgs()

	if runTUI {
		// Load env file for TUI mode
		if err := loadEnvFile(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
			os.Exit(1)
		}
		// Initialize cmd.Logger after loading env file
		cmd.InitLogger()
		// Run interactive TUI mode
		runInteractive()
	} else {
		// Arguments provided - run cobra CLI (it handles --env itself)
		cmd.Execute()
	}
}

// parseArgs extracts the --env flag and decides between TUI and CLI mode.
// The tool runs interactively only when no arguments beyond --env remain.
func parseArgs() (envFile string, runTUI bool) {
	args := os.Args[1:]
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == envFlag:
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --env flag requires a value")
				os.Exit(1)
			}
			i++
			envFile = args[i]
		case strings.HasPrefix(args[i], envFlagEqual):
			envFile = args[i][len(envFlagEqual):]
		default:
			rest = append(rest, args[i])
		}
	}

	return envFile, len(rest) == 0
}

// loadEnvFile loads the specified environment file
func loadEnvFile(file string) error {
	if file == "" {
		file = ".env"
	}

	if err := godotenv.Load(file); err != nil {
		// A missing default .env is fine; a named file must exist
		if file == ".env" && os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}
