// Package config loads simulation parameters from a YAML file. Every field
// has a reference default, so both a missing file and a partial file are fine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulation holds the tunable parameters of the demand simulator.
type Simulation struct {
	// AbandonProbability is the chance a customer walks away without buying.
	AbandonProbability float64 `yaml:"abandon_probability"`
	// MinItems and MaxItems bound how many hot dogs a shopping customer
	// attempts to buy (inclusive).
	MinItems int `yaml:"min_items"`
	MaxItems int `yaml:"max_items"`
	// MinCustomers and MaxCustomers bound the customer count per simulated
	// day (inclusive).
	MinCustomers int `yaml:"min_customers"`
	MaxCustomers int `yaml:"max_customers"`
	// AddonPrice and AddonCost describe the fixed side addon offered with
	// each sale. The addon is an abstraction, not a stocked ingredient.
	AddonPrice float64 `yaml:"addon_price"`
	AddonCost  float64 `yaml:"addon_cost"`
}

// Default returns the reference simulation parameters.
func Default() Simulation {
	return Simulation{
		AbandonProbability: 0.10,
		MinItems:           1,
		MaxItems:           3,
		MinCustomers:       50,
		MaxCustomers:       150,
		AddonPrice:         2.0,
		AddonCost:          1.0,
	}
}

// Load reads simulation parameters from path, overlaying the file onto the
// defaults. A missing file returns the defaults and no error.
func Load(path string) (Simulation, error) {
	sim := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return sim, nil
	}
	if err != nil {
		return sim, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &sim); err != nil {
		return sim, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	if err := sim.Validate(); err != nil {
		return sim, fmt.Errorf("%s: %w", path, err)
	}
	return sim, nil
}

// Validate checks the parameters for internal consistency.
func (s Simulation) Validate() error {
	if s.AbandonProbability < 0 || s.AbandonProbability > 1 {
		return fmt.Errorf("abandon_probability must be within [0, 1], got %g", s.AbandonProbability)
	}
	if s.MinItems < 1 {
		return fmt.Errorf("min_items must be at least 1, got %d", s.MinItems)
	}
	if s.MaxItems < s.MinItems {
		return fmt.Errorf("max_items (%d) cannot be less than min_items (%d)", s.MaxItems, s.MinItems)
	}
	if s.MinCustomers < 0 {
		return fmt.Errorf("min_customers cannot be negative, got %d", s.MinCustomers)
	}
	if s.MaxCustomers < s.MinCustomers {
		return fmt.Errorf("max_customers (%d) cannot be less than min_customers (%d)", s.MaxCustomers, s.MinCustomers)
	}
	if s.AddonPrice < 0 || s.AddonCost < 0 {
		return fmt.Errorf("addon price and cost cannot be negative")
	}
	return nil
}
