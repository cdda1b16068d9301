package dto

import (
	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/domain/entities"
)

// DayReport contains the complete statistics of one simulated stretch of
// customers. It is read-only once produced.
type DayReport struct {
	RunID string `json:"run_id"`
	Day   int    `json:"day"`

	TotalCustomers int `json:"total_customers"`
	Abandoned      int `json:"abandoned"`
	Failed         int `json:"failed"`
	Successful     int `json:"successful"`

	// Rates are percentages of TotalCustomers.
	AbandonedRate  float64 `json:"abandoned_rate"`
	FailedRate     float64 `json:"failed_rate"`
	SuccessfulRate float64 `json:"successful_rate"`

	UnitsSold  int64 `json:"units_sold"`
	AddonsSold int64 `json:"addons_sold"`

	SoldByHotDog    map[entities.HotDogID]int64      `json:"sold_by_hotdog"`
	FailedByHotDog  map[entities.HotDogID]int64      `json:"failed_by_hotdog"`
	ShortagesByIng  map[entities.IngredientID]int64  `json:"shortages_by_ingredient"`
	HotDogNames     map[entities.HotDogID]string     `json:"hotdog_names"`
	IngredientNames map[entities.IngredientID]string `json:"ingredient_names"`

	BestSellerID    entities.HotDogID `json:"best_seller_id,omitempty"`
	BestSellerName  string            `json:"best_seller_name,omitempty"`
	BestSellerUnits int64             `json:"best_seller_units"`

	Revenue       decimal.Decimal `json:"revenue"`
	Cost          decimal.Decimal `json:"cost"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// ComparativeReport breaks a two-day run into per-day and cumulative columns.
// Day2 is obtained by differencing the cumulative totals against the Day1
// snapshot; the two days share one ledger, so depletion compounds.
type ComparativeReport struct {
	RunID string    `json:"run_id"`
	Day1  DayReport `json:"day1"`
	Day2  DayReport `json:"day2"`
	Total DayReport `json:"total"`
}
