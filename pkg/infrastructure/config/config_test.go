package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulacion.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	sim, err := Load(filepath.Join(t.TempDir(), "nada.yaml"))
	if err != nil {
		t.Fatalf("Expected missing file to return defaults, got %v", err)
	}
	if sim != Default() {
		t.Errorf("Expected defaults, got %+v", sim)
	}
}

func TestLoad_PartialFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "abandon_probability: 0.25\nmax_customers: 200\n")

	sim, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if sim.AbandonProbability != 0.25 {
		t.Errorf("Expected abandon probability 0.25, got %g", sim.AbandonProbability)
	}
	if sim.MaxCustomers != 200 {
		t.Errorf("Expected max customers 200, got %d", sim.MaxCustomers)
	}
	if sim.MinItems != 1 || sim.MaxItems != 3 || sim.MinCustomers != 50 {
		t.Errorf("Expected untouched fields at defaults, got %+v", sim)
	}
	if sim.AddonPrice != 2.0 || sim.AddonCost != 1.0 {
		t.Errorf("Expected addon defaults, got %g/%g", sim.AddonPrice, sim.AddonCost)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "min_items: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed yaml, but got none")
	}
}

func TestSimulation_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(*Simulation)
		expectError string
	}{
		{"probability below zero", func(s *Simulation) { s.AbandonProbability = -0.1 },
			"abandon_probability must be within [0, 1], got -0.1"},
		{"probability above one", func(s *Simulation) { s.AbandonProbability = 1.5 },
			"abandon_probability must be within [0, 1], got 1.5"},
		{"zero min items", func(s *Simulation) { s.MinItems = 0 },
			"min_items must be at least 1, got 0"},
		{"inverted item range", func(s *Simulation) { s.MinItems = 4; s.MaxItems = 2 },
			"max_items (2) cannot be less than min_items (4)"},
		{"negative min customers", func(s *Simulation) { s.MinCustomers = -1 },
			"min_customers cannot be negative, got -1"},
		{"inverted customer range", func(s *Simulation) { s.MinCustomers = 100; s.MaxCustomers = 50 },
			"max_customers (50) cannot be less than min_customers (100)"},
		{"negative addon price", func(s *Simulation) { s.AddonPrice = -1 },
			"addon price and cost cannot be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sim := Default()
			tc.mutate(&sim)
			err := sim.Validate()
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoad_InvalidFileFailsValidation(t *testing.T) {
	path := writeConfig(t, "min_items: 0\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error, but got none")
	}
}
