package repositories

import "github.com/crojas/hotdogstand/pkg/domain/entities"

// StockRepository provides access to on-hand quantities per ingredient id.
// Quantities are never negative; an absent entry reads as zero.
type StockRepository interface {
	entities.Stock

	// SetQuantity overwrites the on-hand quantity. Precondition: qty >= 0.
	// Negative values are a caller error and are not validated here.
	SetQuantity(id entities.IngredientID, qty entities.Quantity)
	Quantity(id entities.IngredientID) entities.Quantity
	// Snapshot returns a copy of all entries.
	Snapshot() map[entities.IngredientID]entities.Quantity
}
