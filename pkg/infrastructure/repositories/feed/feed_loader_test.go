package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/infrastructure/repositories/memory"
)

const ingredientsFeed = `[
  {"Categoria": "Pan", "Opciones": [
    {"nombre": "Pan clasico", "tipo": "Trigo"},
    {"nombre": "Pan integral", "base": "Integral"}
  ]},
  {"categoria": "SALCHICHA", "opciones": [
    {"nombre": "Salchicha de res"}
  ]},
  {"Categoria": "Toppings", "Opciones": [
    {"nombre": "Cebolla", "tipo": "Fresco"},
    {"nombre": "Cebolla", "tipo": "Frito"},
    {"nombre": ""}
  ]},
  {"Categoria": "Salsas", "Opciones": [
    {"nombre": "Ketchup"}
  ]},
  {"Categoria": "Acompañante", "Opciones": [
    {"nombre": "Papas fritas"}
  ]},
  {"Categoria": "Rareza", "Opciones": [
    {"nombre": "Misterio"}
  ]}
]`

func writeFeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write feed file: %v", err)
	}
	return path
}

func loadTestIngredients(t *testing.T) ([]*entities.Ingredient, *memory.IngredientRepository) {
	t.Helper()
	loader := NewLoader(nil)
	ingredients, err := loader.LoadIngredients(writeFeed(t, "ingredientes.json", ingredientsFeed))
	if err != nil {
		t.Fatalf("Failed to load ingredients: %v", err)
	}
	catalog := memory.NewIngredientRepository()
	for _, ing := range ingredients {
		catalog.Add(ing)
	}
	return ingredients, catalog
}

func TestLoader_LoadIngredients(t *testing.T) {
	ingredients, catalog := loadTestIngredients(t)

	// Two buns, one sausage, one onion (duplicate skipped, nameless skipped),
	// one sauce, one side, one unknown-category option.
	if len(ingredients) != 7 {
		t.Fatalf("Expected 7 ingredients, got %d", len(ingredients))
	}

	pan := catalog.FindByID(IngredientID("Pan clasico", entities.Bun))
	if pan == nil {
		t.Fatal("Expected Pan clasico in the catalog")
	}
	if pan.ID != "ing_pan_pan_clasico" {
		t.Errorf("Unexpected slug id: %s", pan.ID)
	}
	if pan.Subtype != "Trigo" {
		t.Errorf("Expected subtype from tipo, got %s", pan.Subtype)
	}
	if !pan.UnitCost.Equal(decimal.NewFromFloat(0.8)) {
		t.Errorf("Expected default bun cost 0.8, got %s", pan.UnitCost)
	}

	integral := catalog.FindByName("Pan integral")
	if integral == nil || integral.Subtype != "Integral" {
		t.Errorf("Expected subtype fallback to base, got %v", integral)
	}

	sausage := catalog.FindByName("Salchicha de res")
	if sausage == nil {
		t.Fatal("Expected lowercase category keys to be absorbed")
	}
	if sausage.Category != entities.Sausage {
		t.Errorf("Expected Sausage category, got %s", sausage.Category)
	}
	if sausage.Subtype != "General" {
		t.Errorf("Expected default subtype General, got %s", sausage.Subtype)
	}

	// First occurrence wins for duplicate names in a category.
	onion := catalog.FindByName("Cebolla")
	if onion == nil || onion.Subtype != "Fresco" {
		t.Errorf("Expected first Cebolla to win, got %v", onion)
	}

	// Unknown categories land in Topping.
	mystery := catalog.FindByName("Misterio")
	if mystery == nil || mystery.Category != entities.Topping {
		t.Errorf("Expected unknown category to default to Topping, got %v", mystery)
	}

	side := catalog.FindByName("Papas fritas")
	if side == nil || side.Category != entities.Side {
		t.Errorf("Expected Papas fritas as a side, got %v", side)
	}
	if !side.UnitCost.Equal(decimal.NewFromFloat(2.0)) {
		t.Errorf("Expected default side cost 2.0, got %s", side.UnitCost)
	}
}

func TestLoader_LoadIngredientsMissingFile(t *testing.T) {
	loader := NewLoader(nil)
	if _, err := loader.LoadIngredients(filepath.Join(t.TempDir(), "nada.json")); err == nil {
		t.Error("Expected error for missing feed file, but got none")
	}
}

func TestLoader_LoadMenu(t *testing.T) {
	_, catalog := loadTestIngredients(t)
	loader := NewLoader(nil)

	menuFeed := `[
  {"nombre": "Clasico", "Pan": "Pan clasico", "Salchicha": "Salchicha de res",
   "Toppings": ["Cebolla", "Tomate"], "salsa": "Ketchup", "Acompañante": "Papas fritas"},
  {"nombre": "Sencillo", "pan": "pan integral", "salchicha": "Salchicha de res",
   "toppings": "Cebolla", "salsas": []},
  {"nombre": "Fantasma", "pan": "Pan pita", "salchicha": "Salchicha de res"}
]`

	hotdogs, err := loader.LoadMenu(writeFeed(t, "menu.json", menuFeed), catalog)
	if err != nil {
		t.Fatalf("Failed to load menu: %v", err)
	}

	// Fantasma's bun does not resolve, so only two survive.
	if len(hotdogs) != 2 {
		t.Fatalf("Expected 2 hot dogs, got %d", len(hotdogs))
	}

	clasico := hotdogs[0]
	if clasico.ID != "hd_clasico" {
		t.Errorf("Unexpected slug id: %s", clasico.ID)
	}
	if clasico.Bun.Name != "Pan clasico" || clasico.Sausage.Name != "Salchicha de res" {
		t.Errorf("Unexpected base ingredients: %s, %s", clasico.Bun.Name, clasico.Sausage.Name)
	}
	// Tomate does not resolve and is dropped, but still counts toward price.
	if len(clasico.Toppings) != 1 || clasico.Toppings[0].Name != "Cebolla" {
		t.Errorf("Expected only Cebolla to survive, got %v", clasico.Toppings)
	}
	if !clasico.Price.Equal(decimal.NewFromFloat(6.0)) {
		t.Errorf("Expected price 5.0 + 2 toppings, got %s", clasico.Price)
	}
	if len(clasico.Sauces) != 1 || clasico.Sauces[0].Name != "Ketchup" {
		t.Errorf("Expected the singular salsa key to be absorbed, got %v", clasico.Sauces)
	}
	if clasico.Side == nil || clasico.Side.Name != "Papas fritas" {
		t.Errorf("Expected the accented side key to be absorbed, got %v", clasico.Side)
	}

	sencillo := hotdogs[1]
	if sencillo.Bun.Name != "Pan integral" {
		t.Errorf("Expected case-insensitive name resolution, got %s", sencillo.Bun.Name)
	}
	if len(sencillo.Toppings) != 1 {
		t.Errorf("Expected a bare-string topping list, got %v", sencillo.Toppings)
	}
	if sencillo.Side != nil {
		t.Errorf("Expected no side, got %v", sencillo.Side)
	}
	if !sencillo.Price.Equal(decimal.NewFromFloat(5.5)) {
		t.Errorf("Expected price 5.0 + 1 topping, got %s", sencillo.Price)
	}
}

func TestLoader_SeedDefaultStock(t *testing.T) {
	ingredients, _ := loadTestIngredients(t)
	loader := NewLoader(nil)
	stock := memory.NewStockLedger()

	// A pre-existing entry is left alone.
	panID := IngredientID("Pan clasico", entities.Bun)
	stock.SetQuantity(panID, 5)

	loader.SeedDefaultStock(ingredients, stock)

	if qty := stock.Quantity(panID); qty != 5 {
		t.Errorf("Expected pre-seeded quantity kept, got %d", qty)
	}
	if qty := stock.Quantity(IngredientID("Pan integral", entities.Bun)); qty != 30 {
		t.Errorf("Expected default bun stock 30, got %d", qty)
	}
	if qty := stock.Quantity(IngredientID("Salchicha de res", entities.Sausage)); qty != 25 {
		t.Errorf("Expected default sausage stock 25, got %d", qty)
	}
	if qty := stock.Quantity(IngredientID("Ketchup", entities.Sauce)); qty != 100 {
		t.Errorf("Expected default sauce stock 100, got %d", qty)
	}
	if qty := stock.Quantity(IngredientID("Papas fritas", entities.Side)); qty != 20 {
		t.Errorf("Expected default side stock 20, got %d", qty)
	}
}

func TestSlugIDs(t *testing.T) {
	testCases := []struct {
		name     string
		category entities.Category
		expected entities.IngredientID
	}{
		{"Cebolla", entities.Topping, "ing_topping_cebolla"},
		{"  Papas Fritas ", entities.Side, "ing_acompañante_papas_fritas"},
		{"Pico e' Gallo", entities.Sauce, "ing_salsa_pico_e_gallo"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IngredientID(tc.name, tc.category); got != tc.expected {
				t.Errorf("IngredientID(%q) = %s, want %s", tc.name, got, tc.expected)
			}
		})
	}

	if got := HotDogID("Perro Caliente"); got != "hd_perro_caliente" {
		t.Errorf("HotDogID = %s, want hd_perro_caliente", got)
	}
}
