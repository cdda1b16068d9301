package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/crojas/hotdogstand/pkg/application/dto"
	"github.com/crojas/hotdogstand/pkg/application/services/catalog"
	"github.com/crojas/hotdogstand/pkg/domain/entities"
	standtesting "github.com/crojas/hotdogstand/pkg/infrastructure/testing"
)

func sampleReport() *dto.DayReport {
	return &dto.DayReport{
		RunID:          "run-1",
		Day:            1,
		TotalCustomers: 10,
		Successful:     7,
		Failed:         2,
		Abandoned:      1,
		SuccessfulRate: 70.0,
		FailedRate:     20.0,
		AbandonedRate:  10.0,
		UnitsSold:      12,
		AddonsSold:     5,
		SoldByHotDog:   map[entities.HotDogID]int64{"hd_clasico": 8, "hd_completo": 4},
		FailedByHotDog: map[entities.HotDogID]int64{"hd_completo": 2},
		ShortagesByIng: map[entities.IngredientID]int64{"ing_topping_cebolla": 2},
		HotDogNames: map[entities.HotDogID]string{
			"hd_clasico":  "Clasico",
			"hd_completo": "Completo",
		},
		IngredientNames: map[entities.IngredientID]string{
			"ing_topping_cebolla": "Cebolla",
		},
		BestSellerID:    "hd_clasico",
		BestSellerName:  "Clasico",
		BestSellerUnits: 8,
		Revenue:         decimal.NewFromFloat(70.0),
		Cost:            decimal.NewFromFloat(41.0),
		NetProfit:       decimal.NewFromFloat(29.0),
		MarginPercent:   decimal.NewFromFloat(41.4),
	}
}

func TestRenderDay_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDay(sampleReport(), Config{Format: "text", Out: &buf}); err != nil {
		t.Fatalf("Failed to render report: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Sales Report — Day 1",
		"Customers: 10",
		"Successful: 7 (70.0%)",
		"Hot dogs sold: 12",
		"Best seller: Clasico (8 units)",
		"Cebolla",
		"Revenue:    $70.00",
		"Net profit: $29.00",
		"Margin:     41.4%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderDay_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDay(sampleReport(), Config{Format: "json", Out: &buf}); err != nil {
		t.Fatalf("Failed to render report: %v", err)
	}

	var decoded dto.DayReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Expected valid JSON, got %v:\n%s", err, buf.String())
	}
	if decoded.TotalCustomers != 10 || decoded.UnitsSold != 12 {
		t.Errorf("Unexpected decoded report: %+v", decoded)
	}
	if !decoded.Revenue.Equal(decimal.NewFromFloat(70.0)) {
		t.Errorf("Expected revenue 70.00, got %s", decoded.Revenue)
	}
}

func TestRenderDay_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDay(sampleReport(), Config{Format: "xml", Out: &buf})
	if err == nil {
		t.Fatal("Expected error for unsupported format, but got none")
	}
	if err.Error() != "unsupported output format: xml" {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRenderComparative_Text(t *testing.T) {
	day1 := sampleReport()
	day2 := sampleReport()
	day2.Day = 2
	total := sampleReport()
	total.Day = 0
	total.TotalCustomers = 20
	total.UnitsSold = 24

	var buf bytes.Buffer
	report := &dto.ComparativeReport{RunID: "run-1", Day1: *day1, Day2: *day2, Total: *total}
	if err := RenderComparative(report, Config{Format: "text", Out: &buf}); err != nil {
		t.Fatalf("Failed to render report: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Comparative Sales Report — 2 Days",
		"METRIC",
		"DAY 1",
		"TOTAL",
		"Customers",
		"Best seller over 2 days: Clasico (8 units)",
		"Shortages per ingredient (2 days):",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderInventory(t *testing.T) {
	ingredients, menu, stock := standtesting.BuildStandTestData()
	svc := catalog.NewService(ingredients, menu, stock, nil)

	var buf bytes.Buffer
	RenderInventory(svc.InventorySummary(), &buf)

	out := buf.String()
	for _, want := range []string{
		"Inventory",
		"Pan (2 products)",
		"Pan clasico",
		"30 units",
		"Acompañante (1 products)",
		"Total: 8 products, 330 units",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestSortedIDsOrdering(t *testing.T) {
	counts := map[entities.HotDogID]int64{"hd_a": 2, "hd_b": 5, "hd_c": 2}
	ids := sortedHotDogIDs(counts)
	if len(ids) != 3 || ids[0] != "hd_b" || ids[1] != "hd_a" || ids[2] != "hd_c" {
		t.Errorf("Expected count-descending then id order, got %v", ids)
	}
}
