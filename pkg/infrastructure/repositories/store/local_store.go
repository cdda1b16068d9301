// Package store persists the stand's state as a local JSON snapshot:
// the ingredient records, the menu as id references, and the flat ledger
// mapping. It is a convenience for picking up where a session left off, with
// no durability guarantees.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/domain/repositories"
	"github.com/crojas/hotdogstand/pkg/logger"
)

// IngredientRecord mirrors one catalog entry on disk.
type IngredientRecord struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Subtype  string          `json:"subtype"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// HotDogRecord mirrors one menu entry on disk. Ingredients are stored as id
// references and resolved against the catalog on load.
type HotDogRecord struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BunID      string          `json:"bun_id"`
	SausageID  string          `json:"sausage_id"`
	ToppingIDs []string        `json:"topping_ids"`
	SauceIDs   []string        `json:"sauce_ids"`
	SideID     string          `json:"side_id,omitempty"`
	Price      decimal.Decimal `json:"price"`
}

// State is the full snapshot shape.
type State struct {
	Ingredients []IngredientRecord           `json:"ingredients"`
	Stock       map[string]entities.Quantity `json:"stock"`
	Menu        []HotDogRecord               `json:"menu"`
}

// Store reads and writes snapshots at a fixed path.
type Store struct {
	path string
	log  *logger.Logger
}

// NewStore creates a store for the given path. A nil log disables logging.
func NewStore(path string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{path: path, log: log}
}

// Save writes the current catalog, ledger, and menu to the snapshot file.
func (s *Store) Save(ingredients repositories.IngredientRepository, menu repositories.MenuRepository, stock repositories.StockRepository) error {
	state := State{
		Stock: make(map[string]entities.Quantity),
	}

	for _, ing := range ingredients.All() {
		state.Ingredients = append(state.Ingredients, IngredientRecord{
			ID:       string(ing.ID),
			Name:     ing.Name,
			Category: ing.Category.String(),
			Subtype:  ing.Subtype,
			UnitCost: ing.UnitCost,
		})
	}

	for id, qty := range stock.Snapshot() {
		state.Stock[string(id)] = qty
	}

	for _, hd := range menu.All() {
		rec := HotDogRecord{
			ID:        string(hd.ID),
			Name:      hd.Name,
			BunID:     string(hd.Bun.ID),
			SausageID: string(hd.Sausage.ID),
			Price:     hd.Price,
		}
		for _, t := range hd.Toppings {
			rec.ToppingIDs = append(rec.ToppingIDs, string(t.ID))
		}
		for _, sc := range hd.Sauces {
			rec.SauceIDs = append(rec.SauceIDs, string(sc.ID))
		}
		if hd.Side != nil {
			rec.SideID = string(hd.Side.ID)
		}
		state.Menu = append(state.Menu, rec)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", s.path, err)
	}

	s.log.Infof("saved %d ingredients, %d hot dogs, %d stock entries to %s",
		len(state.Ingredients), len(state.Menu), len(state.Stock), s.path)
	return nil
}

// Load reads the snapshot and merges it into the given repositories.
// Ingredients and hot dogs whose ids already exist are left untouched. A hot
// dog referencing an id that resolves nowhere is skipped and reported; the
// load continues.
func (s *Store) Load(ingredients repositories.IngredientRepository, menu repositories.MenuRepository, stock repositories.StockRepository) error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.log.Infof("no snapshot at %s", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", s.path, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", s.path, err)
	}

	for _, rec := range state.Ingredients {
		id := entities.IngredientID(rec.ID)
		if ingredients.FindByID(id) != nil {
			continue
		}
		ing, err := entities.NewIngredient(id, rec.Name, entities.ParseCategory(rec.Category), rec.Subtype, rec.UnitCost)
		if err != nil {
			s.log.Warnf("snapshot ingredient %q skipped: %v", rec.Name, err)
			continue
		}
		ingredients.Add(ing)
	}

	for id, qty := range state.Stock {
		stock.SetQuantity(entities.IngredientID(id), qty)
	}

	for _, rec := range state.Menu {
		if menu.FindByID(entities.HotDogID(rec.ID)) != nil {
			continue
		}
		hd, err := s.resolveHotDog(rec, ingredients)
		if err != nil {
			s.log.Warnf("snapshot hot dog %q skipped: %v", rec.Name, err)
			continue
		}
		if err := menu.Add(hd); err != nil {
			s.log.Warnf("snapshot hot dog %q skipped: %v", rec.Name, err)
		}
	}

	s.log.Infof("loaded snapshot from %s", s.path)
	return nil
}

func (s *Store) resolveHotDog(rec HotDogRecord, catalog repositories.IngredientRepository) (*entities.HotDog, error) {
	bun := catalog.FindByID(entities.IngredientID(rec.BunID))
	if bun == nil {
		return nil, fmt.Errorf("unknown bun %s", rec.BunID)
	}
	sausage := catalog.FindByID(entities.IngredientID(rec.SausageID))
	if sausage == nil {
		return nil, fmt.Errorf("unknown sausage %s", rec.SausageID)
	}

	var toppings []*entities.Ingredient
	for _, id := range rec.ToppingIDs {
		ing := catalog.FindByID(entities.IngredientID(id))
		if ing == nil {
			return nil, fmt.Errorf("unknown topping %s", id)
		}
		toppings = append(toppings, ing)
	}

	var sauces []*entities.Ingredient
	for _, id := range rec.SauceIDs {
		ing := catalog.FindByID(entities.IngredientID(id))
		if ing == nil {
			return nil, fmt.Errorf("unknown sauce %s", id)
		}
		sauces = append(sauces, ing)
	}

	var side *entities.Ingredient
	if rec.SideID != "" {
		if side = catalog.FindByID(entities.IngredientID(rec.SideID)); side == nil {
			return nil, fmt.Errorf("unknown side %s", rec.SideID)
		}
	}

	return entities.NewHotDog(entities.HotDogID(rec.ID), rec.Name, bun, sausage, toppings, sauces, side, rec.Price)
}
