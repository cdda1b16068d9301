package entities

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientID represents a unique ingredient identifier
type IngredientID string

// Quantity represents an integer on-hand quantity of an ingredient
type Quantity int64

// Category represents the role an ingredient plays in a hot dog
type Category int

const (
	Bun Category = iota
	Sausage
	Topping
	Sauce
	Side
)

// Categories lists all categories in display order.
var Categories = []Category{Bun, Sausage, Topping, Sauce, Side}

// String returns the feed-facing name of the category.
func (c Category) String() string {
	switch c {
	case Bun:
		return "Pan"
	case Sausage:
		return "Salchicha"
	case Topping:
		return "Topping"
	case Sauce:
		return "Salsa"
	case Side:
		return "Acompañante"
	default:
		return "Unknown"
	}
}

// ParseCategory maps a feed category string onto the closed enum. The feed is
// inconsistent about casing, plurals, and accents, so matching is lenient.
// Unrecognized or empty strings default to Topping.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pan":
		return Bun
	case "salchicha":
		return Sausage
	case "topping", "toppings":
		return Topping
	case "salsa", "salsas":
		return Sauce
	case "acompañante", "acompanante":
		return Side
	default:
		return Topping
	}
}

// Ingredient represents a raw stocked item with a unit cost. Identity is ID;
// Name is for human lookup and is matched case-insensitively. Ingredients are
// immutable once created: the only mutation path is cascading removal and
// re-add.
type Ingredient struct {
	ID       IngredientID
	Name     string
	Category Category
	Subtype  string
	UnitCost decimal.Decimal
}

// NewIngredient creates a validated Ingredient. If id is empty a unique one is
// generated.
func NewIngredient(id IngredientID, name string, category Category, subtype string, unitCost decimal.Decimal) (*Ingredient, error) {
	if name == "" {
		return nil, fmt.Errorf("ingredient name cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}
	if id == "" {
		id = NewIngredientID()
	}
	if subtype == "" {
		subtype = "General"
	}

	return &Ingredient{
		ID:       id,
		Name:     name,
		Category: category,
		Subtype:  subtype,
		UnitCost: unitCost,
	}, nil
}

// NewIngredientID generates a unique ingredient id for manual additions.
// Feed-loaded ingredients carry deterministic slug ids instead.
func NewIngredientID() IngredientID {
	return IngredientID("ing_" + uuid.New().String())
}
