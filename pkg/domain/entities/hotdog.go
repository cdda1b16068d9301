package entities

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HotDogID represents a unique hot dog identifier
type HotDogID string

// Stock reports and consumes on-hand quantities by ingredient id. The
// in-memory stock ledger satisfies this; entities only need these two
// operations.
type Stock interface {
	HasEnough(id IngredientID, need Quantity) bool
	Consume(id IngredientID, amount Quantity) bool
}

// HotDog represents a sellable item assembled from ingredients: exactly one
// bun and one sausage, any number of toppings and sauces (duplicates allowed,
// each instance consumes its own unit of stock), and an optional side.
// Ingredients are held as resolved references; construction fails if any is
// missing.
type HotDog struct {
	ID       HotDogID
	Name     string
	Bun      *Ingredient
	Sausage  *Ingredient
	Toppings []*Ingredient
	Sauces   []*Ingredient
	Side     *Ingredient
	Price    decimal.Decimal
}

// NewHotDog creates a validated HotDog. If id is empty a unique one is
// generated. Side may be nil.
func NewHotDog(id HotDogID, name string, bun, sausage *Ingredient, toppings, sauces []*Ingredient, side *Ingredient, price decimal.Decimal) (*HotDog, error) {
	if name == "" {
		return nil, fmt.Errorf("hot dog name cannot be empty")
	}
	if bun == nil {
		return nil, fmt.Errorf("hot dog %s: bun is required", name)
	}
	if sausage == nil {
		return nil, fmt.Errorf("hot dog %s: sausage is required", name)
	}
	for i, t := range toppings {
		if t == nil {
			return nil, fmt.Errorf("hot dog %s: topping %d is unresolved", name, i)
		}
	}
	for i, s := range sauces {
		if s == nil {
			return nil, fmt.Errorf("hot dog %s: sauce %d is unresolved", name, i)
		}
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("hot dog %s: price cannot be negative, got %s", name, price)
	}
	if id == "" {
		id = HotDogID("hd_" + uuid.New().String())
	}

	return &HotDog{
		ID:       id,
		Name:     name,
		Bun:      bun,
		Sausage:  sausage,
		Toppings: toppings,
		Sauces:   sauces,
		Side:     side,
		Price:    price,
	}, nil
}

// components returns every ingredient instance in fixed priority order:
// bun, sausage, toppings in list order, sauces in list order, side.
// Duplicate toppings or sauces appear once per instance.
func (h *HotDog) components() []*Ingredient {
	out := make([]*Ingredient, 0, 3+len(h.Toppings)+len(h.Sauces))
	out = append(out, h.Bun, h.Sausage)
	out = append(out, h.Toppings...)
	out = append(out, h.Sauces...)
	if h.Side != nil {
		out = append(out, h.Side)
	}
	return out
}

// Cost returns the summed unit cost of every component instance.
func (h *HotDog) Cost() decimal.Decimal {
	total := decimal.Zero
	for _, ing := range h.components() {
		total = total.Add(ing.UnitCost)
	}
	return total
}

// Margin returns Price minus Cost.
func (h *HotDog) Margin() decimal.Decimal {
	return h.Price.Sub(h.Cost())
}

// IsAvailable reports whether stock holds at least one unit for every
// component instance. A hot dog with two of the same topping needs two units
// of that topping's stock.
func (h *HotDog) IsAvailable(stock Stock) bool {
	return h.FirstMissing(stock) == nil
}

// FirstMissing returns the first component, in priority order, with
// insufficient stock, or nil if all are sufficient. Used for shortage
// attribution on failed sales.
func (h *HotDog) FirstMissing(stock Stock) *Ingredient {
	need := make(map[IngredientID]Quantity)
	for _, ing := range h.components() {
		need[ing.ID]++
		if !stock.HasEnough(ing.ID, need[ing.ID]) {
			return ing
		}
	}
	return nil
}

// Consume decrements one unit of stock per component instance. The ledger is
// verified first: if any component is short, nothing is consumed and Consume
// returns false. Verification and decrement are separate steps, so callers in
// a concurrent setting must serialize calls per ledger.
func (h *HotDog) Consume(stock Stock) bool {
	if !h.IsAvailable(stock) {
		return false
	}
	for _, ing := range h.components() {
		stock.Consume(ing.ID, 1)
	}
	return true
}

// Uses reports whether the hot dog references the ingredient, as bun, sausage,
// side, or anywhere in toppings or sauces. Comparison is by id.
func (h *HotDog) Uses(id IngredientID) bool {
	for _, ing := range h.components() {
		if ing.ID == id {
			return true
		}
	}
	return false
}
