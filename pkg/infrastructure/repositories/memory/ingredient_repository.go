package memory

import (
	"strings"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/domain/repositories"
)

// IngredientRepository provides in-memory ingredient catalog storage.
// Catalog order is insertion order.
type IngredientRepository struct {
	ingredients []*entities.Ingredient
}

// NewIngredientRepository creates a new in-memory ingredient repository
func NewIngredientRepository() *IngredientRepository {
	return &IngredientRepository{}
}

// Verify interface compliance
var _ repositories.IngredientRepository = (*IngredientRepository)(nil)

// Add appends an ingredient to the catalog. Duplicate ids are not rejected
// here; lookups return the first match, so callers pre-check with FindByID.
func (r *IngredientRepository) Add(ing *entities.Ingredient) {
	r.ingredients = append(r.ingredients, ing)
}

// FindByID returns the first ingredient with the given id, or nil.
func (r *IngredientRepository) FindByID(id entities.IngredientID) *entities.Ingredient {
	for _, ing := range r.ingredients {
		if ing.ID == id {
			return ing
		}
	}
	return nil
}

// FindByName returns the ingredient matching name, or nil. The match is
// case-insensitive: an exact match anywhere in the catalog wins first; failing
// that, the first catalog entry whose name contains the query, or is contained
// by it, is returned. The fallback tolerates feed-name variations and is
// best-effort: with near-duplicate names ("Pan", "Pan integral") it returns
// whichever comes first in catalog order.
func (r *IngredientRepository) FindByName(name string) *entities.Ingredient {
	query := strings.ToLower(strings.TrimSpace(name))

	for _, ing := range r.ingredients {
		if strings.ToLower(ing.Name) == query {
			return ing
		}
	}

	for _, ing := range r.ingredients {
		lower := strings.ToLower(ing.Name)
		if strings.Contains(lower, query) || strings.Contains(query, lower) {
			return ing
		}
	}

	return nil
}

// ListByCategory returns all ingredients in the category, in catalog order.
func (r *IngredientRepository) ListByCategory(category entities.Category) []*entities.Ingredient {
	var out []*entities.Ingredient
	for _, ing := range r.ingredients {
		if ing.Category == category {
			out = append(out, ing)
		}
	}
	return out
}

// ListByCategoryAndSubtype returns all ingredients in the category with the
// given subtype label, in catalog order.
func (r *IngredientRepository) ListByCategoryAndSubtype(category entities.Category, subtype string) []*entities.Ingredient {
	var out []*entities.Ingredient
	for _, ing := range r.ingredients {
		if ing.Category == category && ing.Subtype == subtype {
			out = append(out, ing)
		}
	}
	return out
}

// All returns every ingredient in catalog order.
func (r *IngredientRepository) All() []*entities.Ingredient {
	out := make([]*entities.Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// Remove deletes the first ingredient with the given id, reporting whether
// anything was removed.
func (r *IngredientRepository) Remove(id entities.IngredientID) bool {
	for i, ing := range r.ingredients {
		if ing.ID == id {
			r.ingredients = append(r.ingredients[:i], r.ingredients[i+1:]...)
			return true
		}
	}
	return false
}
