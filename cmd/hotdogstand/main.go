package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/crojas/hotdogstand/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		ingredientsFile = flag.String(
			"ingredients",
			"",
			"Path to the ingredients feed JSON file",
		)
		menuFile      = flag.String("menu", "", "Path to the menu feed JSON file")
		stateFile     = flag.String("state", "", "Path to the local state snapshot JSON file")
		configFile    = flag.String("config", "simulation.yaml", "Path to the simulation config YAML file")
		days          = flag.Int("days", 1, "Days to simulate: 1 or 2")
		seed          = flag.Int64("seed", 0, "Random seed (0 = time-based)")
		format        = flag.String("format", "text", "Output format: text, json")
		showInventory = flag.Bool("inventory", false, "Print the inventory summary before simulating")
		saveState     = flag.Bool("save", false, "Save state back to -state after the run")
		verbose       = flag.Bool("verbose", false, "Enable per-customer detail output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		IngredientsFile: *ingredientsFile,
		MenuFile:        *menuFile,
		StateFile:       *stateFile,
		ConfigFile:      *configFile,
		Days:            *days,
		Seed:            *seed,
		Format:          *format,
		ShowInventory:   *showInventory,
		SaveState:       *saveState,
		Verbose:         *verbose,
		Help:            *help,
	}

	// Create and execute command
	cmd := commands.NewSimulateCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
