// Package feed loads the external catalog feed and normalizes it into the
// fixed internal records before anything reaches the core. The feed is
// tolerant JSON: ingredient options are nested under categories, menu objects
// vary their key casing ("Pan"/"pan", "Toppings"/"toppings"), sauces may
// appear under "salsas" or singular "salsa", and list fields sometimes hold a
// bare string. All of that is absorbed here.
package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/domain/repositories"
	"github.com/crojas/hotdogstand/pkg/logger"
)

// Loader reads feed files and produces core entities.
type Loader struct {
	log *logger.Logger
}

// NewLoader creates a feed loader. A nil log disables logging.
func NewLoader(log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{log: log}
}

// feedCategory is one block of the nested ingredient feed. encoding/json
// matches keys case-insensitively, which absorbs the casing variants.
type feedCategory struct {
	Categoria string       `json:"Categoria"`
	Opciones  []feedOption `json:"Opciones"`
}

type feedOption struct {
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
	Base   string `json:"base"`
}

// flexList accepts either a JSON array of strings or a bare string.
type flexList []string

func (f *flexList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single != "" {
			*f = []string{single}
		}
		return nil
	}
	return fmt.Errorf("expected string or list of strings, got %s", string(data))
}

// feedHotDog is one menu feed object. The accented side key is matched
// explicitly because case-folding does not unify accents.
type feedHotDog struct {
	Nombre         string   `json:"nombre"`
	Pan            string   `json:"pan"`
	Salchicha      string   `json:"salchicha"`
	Toppings       flexList `json:"toppings"`
	Salsas         flexList `json:"salsas"`
	Salsa          flexList `json:"salsa"`
	Acompanante    string   `json:"acompanante"`
	AcompananteAlt string   `json:"acompañante"`
}

// Reference defaults applied during normalization; the feed carries neither
// costs nor prices.
var defaultUnitCost = map[entities.Category]decimal.Decimal{
	entities.Bun:     decimal.NewFromFloat(0.8),
	entities.Sausage: decimal.NewFromFloat(1.5),
	entities.Topping: decimal.NewFromFloat(0.4),
	entities.Sauce:   decimal.NewFromFloat(0.3),
	entities.Side:    decimal.NewFromFloat(2.0),
}

var defaultStock = map[entities.Category]entities.Quantity{
	entities.Bun:     30,
	entities.Sausage: 25,
	entities.Topping: 50,
	entities.Sauce:   100,
	entities.Side:    20,
}

var (
	basePrice       = decimal.NewFromFloat(5.0)
	pricePerTopping = decimal.NewFromFloat(0.5)
)

// LoadIngredients reads the nested ingredient feed and flattens it into
// ingredients with deterministic slug ids and per-category default costs.
// Duplicate ids are skipped, first occurrence wins.
func (l *Loader) LoadIngredients(filename string) ([]*entities.Ingredient, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open ingredients feed %s: %w", filename, err)
	}

	var blocks []feedCategory
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients feed %s: %w", filename, err)
	}

	seen := make(map[entities.IngredientID]bool)
	var out []*entities.Ingredient

	for _, block := range blocks {
		category := entities.ParseCategory(block.Categoria)
		for _, opt := range block.Opciones {
			if opt.Nombre == "" {
				l.log.Warnf("ingredient without a name in category %q skipped", block.Categoria)
				continue
			}

			subtype := opt.Tipo
			if subtype == "" {
				subtype = opt.Base
			}

			id := IngredientID(opt.Nombre, category)
			if seen[id] {
				l.log.Warnf("duplicate ingredient %q skipped", opt.Nombre)
				continue
			}

			ing, err := entities.NewIngredient(id, opt.Nombre, category, subtype, defaultUnitCost[category])
			if err != nil {
				l.log.Warnf("ingredient %q skipped: %v", opt.Nombre, err)
				continue
			}

			seen[id] = true
			out = append(out, ing)
		}
	}

	l.log.Infof("loaded %d ingredients from %s", len(out), filename)
	return out, nil
}

// LoadMenu reads the menu feed and resolves every ingredient by name against
// the catalog. A hot dog whose bun or sausage does not resolve is skipped and
// reported; unresolved toppings, sauces, or sides are dropped from the hot
// dog individually.
func (l *Loader) LoadMenu(filename string, catalog repositories.IngredientRepository) ([]*entities.HotDog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu feed %s: %w", filename, err)
	}

	var records []feedHotDog
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode menu feed %s: %w", filename, err)
	}

	var out []*entities.HotDog
	for _, rec := range records {
		hd, err := l.buildHotDog(rec, catalog)
		if err != nil {
			l.log.Warnf("hot dog %q skipped: %v", rec.Nombre, err)
			continue
		}
		out = append(out, hd)
	}

	l.log.Infof("loaded %d hot dogs from %s", len(out), filename)
	return out, nil
}

func (l *Loader) buildHotDog(rec feedHotDog, catalog repositories.IngredientRepository) (*entities.HotDog, error) {
	name := rec.Nombre
	if name == "" {
		name = "Hot Dog"
	}

	bun := catalog.FindByName(rec.Pan)
	if bun == nil {
		return nil, fmt.Errorf("bun %q not found", rec.Pan)
	}
	sausage := catalog.FindByName(rec.Salchicha)
	if sausage == nil {
		return nil, fmt.Errorf("sausage %q not found", rec.Salchicha)
	}

	var toppings []*entities.Ingredient
	for _, n := range rec.Toppings {
		if ing := catalog.FindByName(n); ing != nil {
			toppings = append(toppings, ing)
		} else {
			l.log.Warnf("hot dog %q: topping %q not found, dropped", name, n)
		}
	}

	sauceNames := rec.Salsas
	if len(sauceNames) == 0 {
		sauceNames = rec.Salsa
	}
	var sauces []*entities.Ingredient
	for _, n := range sauceNames {
		if ing := catalog.FindByName(n); ing != nil {
			sauces = append(sauces, ing)
		} else {
			l.log.Warnf("hot dog %q: sauce %q not found, dropped", name, n)
		}
	}

	sideName := rec.Acompanante
	if sideName == "" {
		sideName = rec.AcompananteAlt
	}
	var side *entities.Ingredient
	if sideName != "" {
		if side = catalog.FindByName(sideName); side == nil {
			l.log.Warnf("hot dog %q: side %q not found, dropped", name, sideName)
		}
	}

	price := basePrice.Add(pricePerTopping.Mul(decimal.NewFromInt(int64(len(rec.Toppings)))))

	return entities.NewHotDog(HotDogID(name), name, bun, sausage, toppings, sauces, side, price)
}

// SeedDefaultStock sets per-category default on-hand quantities for every
// ingredient that has no ledger entry yet.
func (l *Loader) SeedDefaultStock(ingredients []*entities.Ingredient, stock repositories.StockRepository) {
	for _, ing := range ingredients {
		if stock.Quantity(ing.ID) == 0 {
			stock.SetQuantity(ing.ID, defaultStock[ing.Category])
		}
	}
	l.log.Infof("seeded default stock for %d ingredients", len(ingredients))
}

// IngredientID builds the deterministic slug id used for feed-loaded
// ingredients, e.g. "ing_topping_cebolla_frita".
func IngredientID(name string, category entities.Category) entities.IngredientID {
	return entities.IngredientID("ing_" + slug(category.String()) + "_" + slug(name))
}

// HotDogID builds the deterministic slug id used for feed-loaded hot dogs.
func HotDogID(name string) entities.HotDogID {
	return entities.HotDogID("hd_" + slug(name))
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "'", "")
	return s
}
