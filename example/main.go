// Command example demonstrates using the library programmatically: build a
// small catalog, put one hot dog on the menu, remove an ingredient with the
// cascade confirmation, and run a deterministic one-day simulation.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/application/services/catalog"
	"github.com/crojas/hotdogstand/pkg/application/services/sales"
	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/infrastructure/repositories/memory"
	"github.com/crojas/hotdogstand/pkg/interfaces/cli/output"
	"github.com/crojas/hotdogstand/pkg/logger"
)

func main() {
	log := logger.New(logger.Normal, os.Stderr)

	ingredients := memory.NewIngredientRepository()
	menu := memory.NewMenuRepository()
	stock := memory.NewStockLedger()
	svc := catalog.NewService(ingredients, menu, stock, log)

	bun, err := svc.AddIngredient("Pan clasico", entities.Bun, "Trigo", decimal.NewFromFloat(0.8), 30)
	check(err)
	sausage, err := svc.AddIngredient("Salchicha de res", entities.Sausage, "Res", decimal.NewFromFloat(1.5), 25)
	check(err)
	onion, err := svc.AddIngredient("Cebolla", entities.Topping, "Fresco", decimal.NewFromFloat(0.4), 50)
	check(err)
	ketchup, err := svc.AddIngredient("Ketchup", entities.Sauce, "Clasica", decimal.NewFromFloat(0.3), 100)
	check(err)

	hd, err := svc.CreateHotDog("Clasico", bun.ID, sausage.ID,
		[]entities.IngredientID{onion.ID}, []entities.IngredientID{ketchup.ID},
		"", decimal.NewFromFloat(5.0))
	check(err)
	fmt.Printf("menu: %s at $%s, margin $%s\n", hd.Name, hd.Price, hd.Margin())

	// Declining the confirmation leaves both catalogs untouched.
	removed := svc.RemoveIngredient(onion.ID, func(affected []string) bool {
		fmt.Printf("removing Cebolla would drop: %v — keeping it\n", affected)
		return false
	})
	fmt.Printf("removed: %v, menu still has %d hot dog(s)\n", removed, len(menu.All()))

	// A fixed seed makes the run reproducible.
	sim, err := sales.NewSimulator(sales.DefaultConfig(), menu, stock, rand.New(rand.NewSource(42)), log, nil)
	check(err)
	report, err := sim.RunOneDay(context.Background())
	check(err)

	check(output.RenderDay(report, output.Config{Format: "text", Out: os.Stdout}))
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
