package events

import (
	"github.com/crojas/hotdogstand/pkg/domain/entities"
)

const (
	CustomerAbandonedEvent = "customer.abandoned"
	SaleCompletedEvent     = "sale.completed"
	AttemptFailedEvent     = "sale.attempt_failed"
	DayCompletedEvent      = "day.completed"
)

// CustomerAbandoned records a customer who changed their mind before buying.
type CustomerAbandoned struct {
	Customer int `json:"customer"`
}

// SaleCompleted records one sold hot dog, with whether a side addon went with
// it.
type SaleCompleted struct {
	Customer  int               `json:"customer"`
	HotDogID  entities.HotDogID `json:"hotdog_id"`
	HotDog    string            `json:"hotdog"`
	WithAddon bool              `json:"with_addon"`
}

// AttemptFailed records a purchase attempt that failed on stock, with the
// ingredient the shortage was attributed to.
type AttemptFailed struct {
	Customer  int                   `json:"customer"`
	HotDogID  entities.HotDogID     `json:"hotdog_id"`
	HotDog    string                `json:"hotdog"`
	MissingID entities.IngredientID `json:"missing_id"`
	Missing   string                `json:"missing"`
}

// DayCompleted closes out one simulated day.
type DayCompleted struct {
	Day       int `json:"day"`
	Customers int `json:"customers"`
}
