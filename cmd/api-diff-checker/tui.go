package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/uron802/api-diff-checker/cmd"
	"github.com/uron802/api-diff-checker/internal/actions"
	"github.com/uron802/api-diff-checker/pkg/interactive"
)

func runInteractive() {
	fmt.Println("API Diff Checker - Interactive Mode")
	fmt.Println("===================================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "📡 Fetch Responses",
				Description: "Execute the configured API calls and save responses for a version",
				Action:      runFetch,
			},
			{
				Name:        "🔍 Compare Versions",
				Description: "Structurally compare two captured response directories",
				Action:      runCompare,
			},
			{
				Name:        "📋 Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					if err := actions.ShowConfig(); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

// runFetch prompts for the fetch arguments and runs the batch. An empty
// answer returns to the menu without running anything.
func runFetch() error {
	version, err := interactive.Input("Version label for this run:", "")
	if err != nil || version == "" {
		return nil
	}

	configPath, err := interactive.Input("Path to the API config file:", "config/apis.json")
	if err != nil || configPath == "" {
		return nil
	}

	if err := actions.Fetch(context.Background(), cmd.Logger, version, configPath); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
	}

	interactive.PauseForEnter()

	return nil
}

// runCompare prompts for the two response directories and reports their
// differences.
func runCompare() error {
	dir1, err := interactive.Input("Version 1 responses directory:", "apiResponses/v1")
	if err != nil || dir1 == "" {
		return nil
	}

	dir2, err := interactive.Input("Version 2 responses directory:", "apiResponses/v2")
	if err != nil || dir2 == "" {
		return nil
	}

	if err := actions.Compare(cmd.Logger, dir1, dir2); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
	}

	interactive.PauseForEnter()

	return nil
}
