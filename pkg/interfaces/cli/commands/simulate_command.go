// Package commands implements the CLI orchestration: loading the catalog
// from the feed or a local snapshot, running the demand simulation, and
// rendering results.
package commands

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/crojas/hotdogstand/pkg/application/services/catalog"
	"github.com/crojas/hotdogstand/pkg/application/services/sales"
	"github.com/crojas/hotdogstand/pkg/infrastructure/config"
	"github.com/crojas/hotdogstand/pkg/infrastructure/events"
	"github.com/crojas/hotdogstand/pkg/infrastructure/repositories/feed"
	"github.com/crojas/hotdogstand/pkg/infrastructure/repositories/memory"
	"github.com/crojas/hotdogstand/pkg/infrastructure/repositories/store"
	"github.com/crojas/hotdogstand/pkg/interfaces/cli/output"
	"github.com/crojas/hotdogstand/pkg/logger"
	"github.com/shopspring/decimal"
)

// Config holds configuration for the simulate command
type Config struct {
	IngredientsFile string
	MenuFile        string
	StateFile       string
	ConfigFile      string
	Days            int
	Seed            int64
	Format          string
	Verbose         bool
	SaveState       bool
	ShowInventory   bool
	Help            bool
}

// SimulateCommand loads the stand's data and runs the sales simulation.
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given
// configuration.
func NewSimulateCommand(config Config) *SimulateCommand {
	return &SimulateCommand{config: config}
}

// Execute runs the simulate command.
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	level := logger.Normal
	if c.config.Verbose {
		level = logger.Verbose
	}
	log := logger.New(level, os.Stderr)

	simCfg, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	ingredients := memory.NewIngredientRepository()
	menu := memory.NewMenuRepository()
	stock := memory.NewStockLedger()

	if c.config.IngredientsFile != "" {
		loader := feed.NewLoader(log)
		ings, err := loader.LoadIngredients(c.config.IngredientsFile)
		if err != nil {
			return fmt.Errorf("error loading ingredients feed: %w", err)
		}
		for _, ing := range ings {
			ingredients.Add(ing)
		}
		loader.SeedDefaultStock(ings, stock)

		hotdogs, err := loader.LoadMenu(c.config.MenuFile, ingredients)
		if err != nil {
			return fmt.Errorf("error loading menu feed: %w", err)
		}
		for _, hd := range hotdogs {
			if err := menu.Add(hd); err != nil {
				log.Warnf("hot dog %q skipped: %v", hd.Name, err)
			}
		}
	}

	var snapshot *store.Store
	if c.config.StateFile != "" {
		snapshot = store.NewStore(c.config.StateFile, log)
		if err := snapshot.Load(ingredients, menu, stock); err != nil {
			return fmt.Errorf("error loading local state: %w", err)
		}
	}

	if c.config.ShowInventory {
		svc := catalog.NewService(ingredients, menu, stock, log)
		output.RenderInventory(svc.InventorySummary(), os.Stdout)
	}

	seed := c.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	eventStore := events.NewInMemoryEventStore()
	sim, err := sales.NewSimulator(toSalesConfig(simCfg), menu, stock, rng, log, eventStore)
	if err != nil {
		return fmt.Errorf("error creating simulator: %w", err)
	}

	renderCfg := output.Config{Format: c.config.Format, Out: os.Stdout}

	switch c.config.Days {
	case 1:
		report, err := sim.RunOneDay(ctx)
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		if err := output.RenderDay(report, renderCfg); err != nil {
			return err
		}
	case 2:
		report, err := sim.RunTwoDays(ctx)
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		if err := output.RenderComparative(report, renderCfg); err != nil {
			return err
		}
	}

	if c.config.Verbose {
		log.Infof("recorded %d events on run %s", len(eventStore.Stream(sim.RunID(), 1)), sim.RunID())
	}

	if c.config.SaveState && snapshot != nil {
		if err := snapshot.Save(ingredients, menu, stock); err != nil {
			return fmt.Errorf("error saving local state: %w", err)
		}
	}

	return nil
}

func (c *SimulateCommand) validateInputs() error {
	if c.config.IngredientsFile == "" && c.config.StateFile == "" {
		return fmt.Errorf("either an ingredients feed (-ingredients with -menu) or a state file (-state) is required")
	}
	if c.config.IngredientsFile != "" && c.config.MenuFile == "" {
		return fmt.Errorf("-menu is required when -ingredients is given")
	}
	if c.config.Days != 1 && c.config.Days != 2 {
		return fmt.Errorf("days must be 1 or 2, got %d", c.config.Days)
	}
	if c.config.Format != "text" && c.config.Format != "json" {
		return fmt.Errorf("format must be text or json, got %s", c.config.Format)
	}
	if c.config.SaveState && c.config.StateFile == "" {
		return fmt.Errorf("-save requires -state")
	}
	return nil
}

func (c *SimulateCommand) showHelp() {
	fmt.Println("hotdogstand — stock-backed hot dog stand and sales simulator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hotdogstand -ingredients feed.json -menu menu.json [flags]")
	fmt.Println("  hotdogstand -state datos_locales.json [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -ingredients  Path to the ingredients feed (JSON)")
	fmt.Println("  -menu         Path to the menu feed (JSON)")
	fmt.Println("  -state        Path to the local state snapshot (JSON)")
	fmt.Println("  -config       Path to the simulation config (YAML)")
	fmt.Println("  -days         Days to simulate: 1 or 2 (default 1)")
	fmt.Println("  -seed         Random seed (0 = time-based)")
	fmt.Println("  -format       Output format: text, json (default text)")
	fmt.Println("  -inventory    Print the inventory summary before simulating")
	fmt.Println("  -save         Save state back to -state after the run")
	fmt.Println("  -verbose      Per-customer detail on stderr")
}

func toSalesConfig(sim config.Simulation) sales.Config {
	return sales.Config{
		AbandonProbability: sim.AbandonProbability,
		MinItems:           sim.MinItems,
		MaxItems:           sim.MaxItems,
		MinCustomers:       sim.MinCustomers,
		MaxCustomers:       sim.MaxCustomers,
		AddonPrice:         decimal.NewFromFloat(sim.AddonPrice),
		AddonCost:          decimal.NewFromFloat(sim.AddonCost),
	}
}
