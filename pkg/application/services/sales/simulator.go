// Package sales implements the stochastic demand simulator: synthetic
// customers attempting purchases against the menu and the stock ledger, with
// per-product, per-ingredient, and financial statistics accumulated along the
// way.
package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/application/dto"
	"github.com/crojas/hotdogstand/pkg/domain/entities"
	"github.com/crojas/hotdogstand/pkg/domain/repositories"
	"github.com/crojas/hotdogstand/pkg/infrastructure/events"
	"github.com/crojas/hotdogstand/pkg/logger"
)

// Rand is the random source the simulator draws from. *math/rand.Rand
// satisfies it; tests inject a scripted source to replay exact sequences.
//
// Draws per customer happen in a fixed order: one Float64 for the abandon
// decision, then (for shoppers) one Intn for the item count, then per attempt
// one Intn for the product choice and, only after a successful purchase, one
// Float64 for the addon decision.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Config holds the simulator parameters. All ranges are inclusive.
type Config struct {
	AbandonProbability float64
	MinItems           int
	MaxItems           int
	MinCustomers       int
	MaxCustomers       int
	AddonPrice         decimal.Decimal
	AddonCost          decimal.Decimal
}

// DefaultConfig returns the reference parameters: 10% abandon, 1-3 items,
// 50-150 customers per day, addon sold at 2.00 with cost 1.00.
func DefaultConfig() Config {
	return Config{
		AbandonProbability: 0.10,
		MinItems:           1,
		MaxItems:           3,
		MinCustomers:       50,
		MaxCustomers:       150,
		AddonPrice:         decimal.NewFromFloat(2.0),
		AddonCost:          decimal.NewFromFloat(1.0),
	}
}

// Simulator runs synthetic customers against the menu and the ledger. It
// mutates the ledger it was given; runs on the same simulator share depletion.
// Not safe for concurrent use: every consume is a verify-then-decrement pair.
type Simulator struct {
	config Config
	menu   repositories.MenuRepository
	stock  repositories.StockRepository
	rng    Rand
	log    *logger.Logger
	store  *events.InMemoryEventStore

	runID string
	tally *tally
	day   int
}

// NewSimulator creates a simulator. log may be nil; store may be nil to
// disable event recording.
func NewSimulator(config Config, menu repositories.MenuRepository, stock repositories.StockRepository, rng Rand, log *logger.Logger, store *events.InMemoryEventStore) (*Simulator, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if config.MinItems < 1 || config.MaxItems < config.MinItems {
		return nil, fmt.Errorf("invalid item range [%d, %d]", config.MinItems, config.MaxItems)
	}
	if config.MinCustomers < 0 || config.MaxCustomers < config.MinCustomers {
		return nil, fmt.Errorf("invalid customer range [%d, %d]", config.MinCustomers, config.MaxCustomers)
	}
	if config.AbandonProbability < 0 || config.AbandonProbability > 1 {
		return nil, fmt.Errorf("abandon probability must be within [0, 1], got %g", config.AbandonProbability)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Simulator{
		config: config,
		menu:   menu,
		stock:  stock,
		rng:    rng,
		log:    log,
		store:  store,
		runID:  uuid.New().String(),
	}, nil
}

// RunID identifies this simulator's event stream and reports.
func (s *Simulator) RunID() string {
	return s.runID
}

// RunOneDay simulates a single day with a customer count drawn from the
// configured range and returns its report.
func (s *Simulator) RunOneDay(ctx context.Context) (*dto.DayReport, error) {
	s.reset()

	if err := s.runDay(ctx); err != nil {
		return nil, err
	}
	report := s.buildReport(s.tally, 1)
	return &report, nil
}

// RunTwoDays simulates two consecutive days against the same ledger and
// accumulators, so day two starts from day one's depleted stock. The
// comparative report differences the cumulative totals against the day-one
// snapshot.
func (s *Simulator) RunTwoDays(ctx context.Context) (*dto.ComparativeReport, error) {
	s.reset()

	if err := s.runDay(ctx); err != nil {
		return nil, err
	}
	day1 := s.tally.snapshot()

	if err := s.runDay(ctx); err != nil {
		return nil, err
	}

	return &dto.ComparativeReport{
		RunID: s.runID,
		Day1:  s.buildReport(day1, 1),
		Day2:  s.buildReport(s.tally.minus(day1), 2),
		Total: s.buildReport(s.tally, 0),
	}, nil
}

func (s *Simulator) reset() {
	s.tally = newTally()
	s.day = 0
}

// runDay processes one day's worth of customers, strictly one at a time in
// increasing index order.
func (s *Simulator) runDay(ctx context.Context) error {
	s.day++
	count := s.config.MinCustomers + s.rng.Intn(s.config.MaxCustomers-s.config.MinCustomers+1)
	s.log.Infof("day %d: %d customers", s.day, count)

	first := s.tally.customers
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.processCustomer(first + i)
	}

	s.append(events.DayCompletedEvent, events.DayCompleted{Day: s.day, Customers: count})
	return nil
}

// processCustomer walks one customer through the purchase state machine:
// abandon outright, or attempt between MinItems and MaxItems purchases.
func (s *Simulator) processCustomer(id int) {
	s.tally.customers++

	if s.rng.Float64() < s.config.AbandonProbability {
		s.tally.abandoned++
		s.append(events.CustomerAbandonedEvent, events.CustomerAbandoned{Customer: id})
		s.log.Debugf("customer %d changed their mind and bought nothing", id)
		return
	}

	items := s.config.MinItems + s.rng.Intn(s.config.MaxItems-s.config.MinItems+1)
	purchases := 0

	for attempt := 0; attempt < items; attempt++ {
		menu := s.menu.All()
		if len(menu) == 0 {
			// Nothing to sell; drop this customer's remaining attempts.
			s.log.Debugf("customer %d: menu is empty, aborting attempts", id)
			break
		}

		hd := menu[s.rng.Intn(len(menu))]
		if hd.Consume(s.stock) {
			purchases++
			s.tally.unitsSold++
			s.tally.soldByHotDog[hd.ID]++
			s.tally.revenue = s.tally.revenue.Add(hd.Price)
			s.tally.cost = s.tally.cost.Add(hd.Cost())

			withAddon := s.rng.Float64() < 0.5
			if withAddon {
				s.tally.addonsSold++
				s.tally.revenue = s.tally.revenue.Add(s.config.AddonPrice)
				s.tally.cost = s.tally.cost.Add(s.config.AddonCost)
			}
			s.append(events.SaleCompletedEvent, events.SaleCompleted{Customer: id, HotDogID: hd.ID, HotDog: hd.Name, WithAddon: withAddon})
			s.log.Debugf("customer %d bought %q", id, hd.Name)
		} else {
			s.tally.failedByHotDog[hd.ID]++
			missing := hd.FirstMissing(s.stock)
			if missing != nil {
				s.tally.shortagesByIng[missing.ID]++
				s.append(events.AttemptFailedEvent, events.AttemptFailed{Customer: id, HotDogID: hd.ID, HotDog: hd.Name, MissingID: missing.ID, Missing: missing.Name})
				s.log.Debugf("customer %d could not buy %q, out of %q", id, hd.Name, missing.Name)
			}
		}
	}

	if purchases > 0 {
		s.tally.successful++
	} else {
		s.tally.failed++
	}
}

func (s *Simulator) append(eventType string, data interface{}) {
	s.store.Append(events.NewEvent(eventType, s.runID, data))
}

// buildReport derives the read-only report from a tally. day 0 marks the
// cumulative column of a comparative report.
func (s *Simulator) buildReport(t *tally, day int) dto.DayReport {
	report := dto.DayReport{
		RunID:           s.runID,
		Day:             day,
		TotalCustomers:  t.customers,
		Abandoned:       t.abandoned,
		Failed:          t.failed,
		Successful:      t.successful,
		UnitsSold:       t.unitsSold,
		AddonsSold:      t.addonsSold,
		SoldByHotDog:    t.soldByHotDog,
		FailedByHotDog:  t.failedByHotDog,
		ShortagesByIng:  t.shortagesByIng,
		HotDogNames:     make(map[entities.HotDogID]string),
		IngredientNames: make(map[entities.IngredientID]string),
		Revenue:         t.revenue,
		Cost:            t.cost,
		NetProfit:       t.revenue.Sub(t.cost),
	}

	if t.customers > 0 {
		report.AbandonedRate = float64(t.abandoned) / float64(t.customers) * 100
		report.FailedRate = float64(t.failed) / float64(t.customers) * 100
		report.SuccessfulRate = float64(t.successful) / float64(t.customers) * 100
	}

	if report.Revenue.IsPositive() {
		report.MarginPercent = report.NetProfit.Div(report.Revenue).Mul(decimal.NewFromInt(100))
	} else {
		report.MarginPercent = decimal.Zero
	}

	// Resolve names from the menu so reports stand alone. Shortage
	// attribution only ever names ingredients reachable from the menu.
	for _, hd := range s.menu.All() {
		report.HotDogNames[hd.ID] = hd.Name
		for _, ing := range []*entities.Ingredient{hd.Bun, hd.Sausage, hd.Side} {
			if ing != nil {
				report.IngredientNames[ing.ID] = ing.Name
			}
		}
		for _, ing := range hd.Toppings {
			report.IngredientNames[ing.ID] = ing.Name
		}
		for _, ing := range hd.Sauces {
			report.IngredientNames[ing.ID] = ing.Name
		}
	}

	// Menu order breaks ties, which keeps the report deterministic.
	for _, hd := range s.menu.All() {
		if units := t.soldByHotDog[hd.ID]; units > report.BestSellerUnits {
			report.BestSellerUnits = units
			report.BestSellerID = hd.ID
			report.BestSellerName = hd.Name
		}
	}

	return report
}
