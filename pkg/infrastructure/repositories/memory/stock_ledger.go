package memory

import (
	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/domain/repositories"
)

// StockLedger provides in-memory on-hand quantity storage
type StockLedger struct {
	onHand map[entities.IngredientID]entities.Quantity
}

// NewStockLedger creates an empty in-memory stock ledger
func NewStockLedger() *StockLedger {
	return &StockLedger{
		onHand: make(map[entities.IngredientID]entities.Quantity),
	}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockLedger)(nil)

// SetQuantity overwrites the on-hand quantity for an ingredient.
// Precondition: qty >= 0.
func (l *StockLedger) SetQuantity(id entities.IngredientID, qty entities.Quantity) {
	l.onHand[id] = qty
}

// Quantity returns the on-hand quantity, or 0 for an unknown ingredient.
func (l *StockLedger) Quantity(id entities.IngredientID) entities.Quantity {
	return l.onHand[id]
}

// HasEnough reports whether at least need units are on hand.
func (l *StockLedger) HasEnough(id entities.IngredientID, need entities.Quantity) bool {
	return l.onHand[id] >= need
}

// Consume decrements the on-hand quantity by amount if enough is available,
// returning false and leaving the ledger untouched otherwise.
func (l *StockLedger) Consume(id entities.IngredientID, amount entities.Quantity) bool {
	if !l.HasEnough(id, amount) {
		return false
	}
	l.onHand[id] -= amount
	return true
}

// Snapshot returns a copy of all ledger entries.
func (l *StockLedger) Snapshot() map[entities.IngredientID]entities.Quantity {
	out := make(map[entities.IngredientID]entities.Quantity, len(l.onHand))
	for id, qty := range l.onHand {
		out[id] = qty
	}
	return out
}
