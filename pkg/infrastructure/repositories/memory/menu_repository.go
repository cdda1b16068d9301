package memory

import (
	"fmt"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/domain/repositories"
)

// MenuRepository provides in-memory menu storage. Menu order is insertion
// order and ids are unique.
type MenuRepository struct {
	hotdogs []*entities.HotDog
}

// NewMenuRepository creates a new in-memory menu repository
func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

// Verify interface compliance
var _ repositories.MenuRepository = (*MenuRepository)(nil)

// Add appends a hot dog to the menu. Adding a duplicate id is an error.
func (r *MenuRepository) Add(hd *entities.HotDog) error {
	if r.FindByID(hd.ID) != nil {
		return fmt.Errorf("hot dog already on menu: %s", hd.ID)
	}
	r.hotdogs = append(r.hotdogs, hd)
	return nil
}

// RemoveByID deletes the hot dog with the given id, reporting whether
// anything was removed.
func (r *MenuRepository) RemoveByID(id entities.HotDogID) bool {
	for i, hd := range r.hotdogs {
		if hd.ID == id {
			r.hotdogs = append(r.hotdogs[:i], r.hotdogs[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns the hot dog with the given id, or nil.
func (r *MenuRepository) FindByID(id entities.HotDogID) *entities.HotDog {
	for _, hd := range r.hotdogs {
		if hd.ID == id {
			return hd
		}
	}
	return nil
}

// All returns every hot dog in menu order.
func (r *MenuRepository) All() []*entities.HotDog {
	out := make([]*entities.HotDog, len(r.hotdogs))
	copy(out, r.hotdogs)
	return out
}

// UsingIngredient returns every hot dog referencing the ingredient, in menu
// order.
func (r *MenuRepository) UsingIngredient(id entities.IngredientID) []*entities.HotDog {
	var out []*entities.HotDog
	for _, hd := range r.hotdogs {
		if hd.Uses(id) {
			out = append(out, hd)
		}
	}
	return out
}
