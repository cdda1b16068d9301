// Package catalog implements the management workflows over the ingredient
// catalog, the menu, and the stock ledger, including the cascading removal
// protocol that keeps the menu consistent when an ingredient disappears.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/domain/repositories"
	"github.com/crojas/hotdogstand/pkg/logger"
)

// ConfirmFunc is the injected confirmation boundary for cascading removals.
// It receives the names of the hot dogs that would be removed and reports
// whether to proceed. The service never prompts anyone itself.
type ConfirmFunc func(affectedNames []string) bool

// Service wires the three stores together for management operations.
type Service struct {
	ingredients repositories.IngredientRepository
	menu        repositories.MenuRepository
	stock       repositories.StockRepository
	log         *logger.Logger
}

// NewService creates a catalog service. A nil log disables logging.
func NewService(ingredients repositories.IngredientRepository, menu repositories.MenuRepository, stock repositories.StockRepository, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		ingredients: ingredients,
		menu:        menu,
		stock:       stock,
		log:         log,
	}
}

// AddIngredient creates an ingredient with a generated id, registers it, and
// seeds its initial stock. The generated id cannot collide, which keeps the
// append-only catalog free of shadowed duplicates.
func (s *Service) AddIngredient(name string, category entities.Category, subtype string, unitCost decimal.Decimal, initialStock entities.Quantity) (*entities.Ingredient, error) {
	ing, err := entities.NewIngredient("", name, category, subtype, unitCost)
	if err != nil {
		return nil, err
	}
	if initialStock < 0 {
		return nil, fmt.Errorf("initial stock cannot be negative, got %d", initialStock)
	}

	s.ingredients.Add(ing)
	s.stock.SetQuantity(ing.ID, initialStock)
	s.log.Infof("added ingredient %q (%s) with %d units", ing.Name, ing.Category, initialStock)
	return ing, nil
}

// CreateHotDog assembles a hot dog from ingredient ids and puts it on the
// menu. Every id must resolve against the catalog; an unresolvable reference
// fails the whole creation.
func (s *Service) CreateHotDog(name string, bunID, sausageID entities.IngredientID, toppingIDs, sauceIDs []entities.IngredientID, sideID entities.IngredientID, price decimal.Decimal) (*entities.HotDog, error) {
	bun := s.ingredients.FindByID(bunID)
	if bun == nil {
		return nil, fmt.Errorf("hot dog %s: unknown bun %s", name, bunID)
	}
	sausage := s.ingredients.FindByID(sausageID)
	if sausage == nil {
		return nil, fmt.Errorf("hot dog %s: unknown sausage %s", name, sausageID)
	}

	toppings := make([]*entities.Ingredient, 0, len(toppingIDs))
	for _, id := range toppingIDs {
		ing := s.ingredients.FindByID(id)
		if ing == nil {
			return nil, fmt.Errorf("hot dog %s: unknown topping %s", name, id)
		}
		toppings = append(toppings, ing)
	}

	sauces := make([]*entities.Ingredient, 0, len(sauceIDs))
	for _, id := range sauceIDs {
		ing := s.ingredients.FindByID(id)
		if ing == nil {
			return nil, fmt.Errorf("hot dog %s: unknown sauce %s", name, id)
		}
		sauces = append(sauces, ing)
	}

	var side *entities.Ingredient
	if sideID != "" {
		if side = s.ingredients.FindByID(sideID); side == nil {
			return nil, fmt.Errorf("hot dog %s: unknown side %s", name, sideID)
		}
	}

	hd, err := entities.NewHotDog("", name, bun, sausage, toppings, sauces, side, price)
	if err != nil {
		return nil, err
	}
	if err := s.menu.Add(hd); err != nil {
		return nil, err
	}
	s.log.Infof("added hot dog %q at %s (cost %s)", hd.Name, hd.Price, hd.Cost())
	return hd, nil
}

// RemoveIngredient removes an ingredient and, when the menu depends on it,
// every affected hot dog as one confirmed operation.
//
// The protocol is compute-then-commit: first the affected hot dogs are
// collected, then confirm decides. On refusal nothing is touched. On
// confirmation all affected hot dogs leave the menu before the ingredient
// leaves the catalog, so the menu never references a missing ingredient.
// Returns false when the ingredient does not exist or the removal was
// declined.
func (s *Service) RemoveIngredient(id entities.IngredientID, confirm ConfirmFunc) bool {
	ing := s.ingredients.FindByID(id)
	if ing == nil {
		return false
	}

	affected := s.menu.UsingIngredient(id)
	if len(affected) > 0 {
		names := make([]string, len(affected))
		for i, hd := range affected {
			names[i] = hd.Name
		}
		if confirm == nil || !confirm(names) {
			s.log.Infof("removal of %q cancelled, %d hot dog(s) kept", ing.Name, len(affected))
			return false
		}
		for _, hd := range affected {
			s.menu.RemoveByID(hd.ID)
			s.log.Infof("hot dog %q removed from the menu", hd.Name)
		}
	}

	s.ingredients.Remove(id)
	s.log.Infof("ingredient %q removed", ing.Name)
	return true
}

// StockLine is one row of the inventory summary.
type StockLine struct {
	Ingredient *entities.Ingredient
	OnHand     entities.Quantity
}

// CategoryStock groups the inventory summary per category, in catalog order.
type CategoryStock struct {
	Category entities.Category
	Lines    []StockLine
}

// InventorySummary reports on-hand stock for every ingredient, grouped by
// category in the fixed category order.
func (s *Service) InventorySummary() []CategoryStock {
	out := make([]CategoryStock, 0, len(entities.Categories))
	for _, cat := range entities.Categories {
		group := CategoryStock{Category: cat}
		for _, ing := range s.ingredients.ListByCategory(cat) {
			group.Lines = append(group.Lines, StockLine{
				Ingredient: ing,
				OnHand:     s.stock.Quantity(ing.ID),
			})
		}
		out = append(out, group)
	}
	return out
}
