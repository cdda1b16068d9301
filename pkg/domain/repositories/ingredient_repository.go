package repositories

import "github.com/crojas/hotdogstand/pkg/domain/entities"

// IngredientRepository provides access to the ingredient catalog. Lookups
// return nil when nothing matches; absence is an expected outcome, not an
// error.
type IngredientRepository interface {
	// Add appends an ingredient. Id uniqueness is not enforced here; callers
	// that care must pre-check with FindByID, since duplicate ids shadow on
	// lookup (first match wins).
	Add(ing *entities.Ingredient)
	FindByID(id entities.IngredientID) *entities.Ingredient
	// FindByName matches case-insensitively: exact match first, then a
	// best-effort substring fallback in either direction, first match in
	// catalog order.
	FindByName(name string) *entities.Ingredient
	ListByCategory(category entities.Category) []*entities.Ingredient
	ListByCategoryAndSubtype(category entities.Category, subtype string) []*entities.Ingredient
	All() []*entities.Ingredient
	// Remove deletes the ingredient with the given id. Only the cascading
	// removal workflow should call this directly.
	Remove(id entities.IngredientID) bool
}
