package sales

import (
	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
)

// tally accumulates statistics across simulated customers. One tally lives
// for a whole run; two-day runs snapshot it between days and difference
// afterwards.
type tally struct {
	customers  int
	abandoned  int
	failed     int
	successful int

	unitsSold  int64
	addonsSold int64

	soldByHotDog   map[entities.HotDogID]int64
	failedByHotDog map[entities.HotDogID]int64
	shortagesByIng map[entities.IngredientID]int64

	revenue decimal.Decimal
	cost    decimal.Decimal
}

func newTally() *tally {
	return &tally{
		soldByHotDog:   make(map[entities.HotDogID]int64),
		failedByHotDog: make(map[entities.HotDogID]int64),
		shortagesByIng: make(map[entities.IngredientID]int64),
		revenue:        decimal.Zero,
		cost:           decimal.Zero,
	}
}

// snapshot returns an independent copy of the current counters.
func (t *tally) snapshot() *tally {
	s := newTally()
	s.customers = t.customers
	s.abandoned = t.abandoned
	s.failed = t.failed
	s.successful = t.successful
	s.unitsSold = t.unitsSold
	s.addonsSold = t.addonsSold
	s.revenue = t.revenue
	s.cost = t.cost
	for id, n := range t.soldByHotDog {
		s.soldByHotDog[id] = n
	}
	for id, n := range t.failedByHotDog {
		s.failedByHotDog[id] = n
	}
	for id, n := range t.shortagesByIng {
		s.shortagesByIng[id] = n
	}
	return s
}

// minus returns the counters accumulated since prev was snapshotted.
func (t *tally) minus(prev *tally) *tally {
	d := newTally()
	d.customers = t.customers - prev.customers
	d.abandoned = t.abandoned - prev.abandoned
	d.failed = t.failed - prev.failed
	d.successful = t.successful - prev.successful
	d.unitsSold = t.unitsSold - prev.unitsSold
	d.addonsSold = t.addonsSold - prev.addonsSold
	d.revenue = t.revenue.Sub(prev.revenue)
	d.cost = t.cost.Sub(prev.cost)
	for id, n := range t.soldByHotDog {
		if diff := n - prev.soldByHotDog[id]; diff != 0 {
			d.soldByHotDog[id] = diff
		}
	}
	for id, n := range t.failedByHotDog {
		if diff := n - prev.failedByHotDog[id]; diff != 0 {
			d.failedByHotDog[id] = diff
		}
	}
	for id, n := range t.shortagesByIng {
		if diff := n - prev.shortagesByIng[id]; diff != 0 {
			d.shortagesByIng[id] = diff
		}
	}
	return d
}
