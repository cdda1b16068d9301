// Package output renders simulation reports and inventory summaries for the
// CLI, as aligned text tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/crojas/hotdogstand/pkg/application/dto"
	"github.com/crojas/hotdogstand/pkg/application/services/catalog"
	"github.com/crojas/hotdogstand/pkg/domain/entities"
)

// Config holds rendering options.
type Config struct {
	Format string // "text" or "json"
	Out    io.Writer
}

// RenderDay writes a single-day report in the configured format.
func RenderDay(report *dto.DayReport, config Config) error {
	switch config.Format {
	case "text":
		renderDayText(report, config.Out)
		return nil
	case "json":
		return renderJSON(report, config.Out)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RenderComparative writes a two-day comparative report in the configured
// format.
func RenderComparative(report *dto.ComparativeReport, config Config) error {
	switch config.Format {
	case "text":
		renderComparativeText(report, config.Out)
		return nil
	case "json":
		return renderJSON(report, config.Out)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RenderInventory writes the per-category stock summary as text.
func RenderInventory(summary []catalog.CategoryStock, out io.Writer) {
	fmt.Fprintf(out, "Inventory\n")
	fmt.Fprintf(out, "=========\n")

	totalLines, totalUnits := 0, entities.Quantity(0)
	for _, group := range summary {
		fmt.Fprintf(out, "\n%s (%d products)\n", group.Category, len(group.Lines))
		for _, line := range group.Lines {
			totalLines++
			totalUnits += line.OnHand
			fmt.Fprintf(out, "  %-25s %-12s $%-8s %6d units\n",
				line.Ingredient.Name,
				line.Ingredient.Subtype,
				line.Ingredient.UnitCost.StringFixed(2),
				line.OnHand)
		}
	}
	fmt.Fprintf(out, "\nTotal: %d products, %d units\n", totalLines, totalUnits)
}

func renderDayText(r *dto.DayReport, out io.Writer) {
	fmt.Fprintf(out, "Sales Report — Day %d\n", r.Day)
	fmt.Fprintf(out, "=====================\n\n")

	fmt.Fprintf(out, "Customers: %d\n", r.TotalCustomers)
	fmt.Fprintf(out, "  Successful: %d (%.1f%%)\n", r.Successful, r.SuccessfulRate)
	fmt.Fprintf(out, "  Failed:     %d (%.1f%%)\n", r.Failed, r.FailedRate)
	fmt.Fprintf(out, "  Abandoned:  %d (%.1f%%)\n", r.Abandoned, r.AbandonedRate)

	fmt.Fprintf(out, "\nHot dogs sold: %d\n", r.UnitsSold)
	fmt.Fprintf(out, "Side addons sold: %d\n", r.AddonsSold)
	if r.BestSellerID != "" {
		fmt.Fprintf(out, "Best seller: %s (%d units)\n", r.BestSellerName, r.BestSellerUnits)
	}

	if len(r.FailedByHotDog) > 0 {
		fmt.Fprintf(out, "\nFailed attempts per hot dog:\n")
		for _, id := range sortedHotDogIDs(r.FailedByHotDog) {
			fmt.Fprintf(out, "  %-25s %d\n", r.HotDogNames[id], r.FailedByHotDog[id])
		}
	}

	if len(r.ShortagesByIng) > 0 {
		fmt.Fprintf(out, "\nShortages per ingredient:\n")
		for _, id := range sortedIngredientIDs(r.ShortagesByIng) {
			name := r.IngredientNames[id]
			if name == "" {
				name = string(id)
			}
			fmt.Fprintf(out, "  %-25s %d\n", name, r.ShortagesByIng[id])
		}
	}

	fmt.Fprintf(out, "\nFinancials:\n")
	fmt.Fprintf(out, "  Revenue:    $%s\n", r.Revenue.StringFixed(2))
	fmt.Fprintf(out, "  Cost:       $%s\n", r.Cost.StringFixed(2))
	fmt.Fprintf(out, "  Net profit: $%s\n", r.NetProfit.StringFixed(2))
	fmt.Fprintf(out, "  Margin:     %s%%\n", r.MarginPercent.StringFixed(1))
}

func renderComparativeText(r *dto.ComparativeReport, out io.Writer) {
	fmt.Fprintf(out, "Comparative Sales Report — 2 Days\n")
	fmt.Fprintf(out, "=================================\n\n")

	fmt.Fprintf(out, "%-22s %12s %12s %12s\n", "METRIC", "DAY 1", "DAY 2", "TOTAL")
	fmt.Fprintf(out, "%-22s %12s %12s %12s\n", "----------------------", "------------", "------------", "------------")

	row := func(label string, v func(*dto.DayReport) string) {
		fmt.Fprintf(out, "%-22s %12s %12s %12s\n", label, v(&r.Day1), v(&r.Day2), v(&r.Total))
	}

	row("Customers", func(d *dto.DayReport) string { return fmt.Sprintf("%d", d.TotalCustomers) })
	row("Successful", func(d *dto.DayReport) string { return fmt.Sprintf("%d", d.Successful) })
	row("Failed", func(d *dto.DayReport) string { return fmt.Sprintf("%d", d.Failed) })
	row("Abandoned", func(d *dto.DayReport) string { return fmt.Sprintf("%d", d.Abandoned) })
	row("Success rate", func(d *dto.DayReport) string { return fmt.Sprintf("%.1f%%", d.SuccessfulRate) })
	row("Hot dogs sold", func(d *dto.DayReport) string { return fmt.Sprintf("%d", d.UnitsSold) })
	row("Addons sold", func(d *dto.DayReport) string { return fmt.Sprintf("%d", d.AddonsSold) })
	row("Revenue", func(d *dto.DayReport) string { return "$" + d.Revenue.StringFixed(2) })
	row("Cost", func(d *dto.DayReport) string { return "$" + d.Cost.StringFixed(2) })
	row("Net profit", func(d *dto.DayReport) string { return "$" + d.NetProfit.StringFixed(2) })
	row("Margin", func(d *dto.DayReport) string { return d.MarginPercent.StringFixed(1) + "%" })

	if r.Total.BestSellerID != "" {
		fmt.Fprintf(out, "\nBest seller over 2 days: %s (%d units)\n", r.Total.BestSellerName, r.Total.BestSellerUnits)
	}

	if len(r.Total.ShortagesByIng) > 0 {
		fmt.Fprintf(out, "\nShortages per ingredient (2 days):\n")
		for _, id := range sortedIngredientIDs(r.Total.ShortagesByIng) {
			name := r.Total.IngredientNames[id]
			if name == "" {
				name = string(id)
			}
			fmt.Fprintf(out, "  %-25s %d\n", name, r.Total.ShortagesByIng[id])
		}
	}
}

func renderJSON(v any, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Map iteration order is random; reports sort by count descending, then id,
// so output is stable.
func sortedHotDogIDs(counts map[entities.HotDogID]int64) []entities.HotDogID {
	ids := make([]entities.HotDogID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}

func sortedIngredientIDs(counts map[entities.IngredientID]int64) []entities.IngredientID {
	ids := make([]entities.IngredientID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
