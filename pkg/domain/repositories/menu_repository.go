package repositories

import "github.com/crojas/hotdogstand/pkg/domain/entities"

// MenuRepository provides access to the hot dog menu. Insertion order is
// preserved and ids are unique.
type MenuRepository interface {
	Add(hd *entities.HotDog) error
	RemoveByID(id entities.HotDogID) bool
	FindByID(id entities.HotDogID) *entities.HotDog
	All() []*entities.HotDog
	// UsingIngredient returns every hot dog that references the ingredient as
	// bun, sausage, side, or in its toppings or sauces, in menu order.
	UsingIngredient(id entities.IngredientID) []*entities.HotDog
}
