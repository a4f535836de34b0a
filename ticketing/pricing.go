package ticketing

import "museumguide-backend/models"

// PriceTable resolves a ticket category to its unit price. Unrecognized
// categories fall back to the configured default amount rather than failing,
// so pricing is a total function.
type PriceTable struct {
	prices   map[string]float64
	fallback float64
}

// NewPriceTable copies the given table. The fallback is charged for any
// category not present in the table.
func NewPriceTable(prices map[string]float64, fallback float64) *PriceTable {
	copied := make(map[string]float64, len(prices))
	for category, price := range prices {
		copied[category] = price
	}
	return &PriceTable{prices: copied, fallback: fallback}
}

// DefaultPriceTable returns the museum's published admission prices, with the
// adult price as the fallback for unknown categories.
func DefaultPriceTable() *PriceTable {
	return NewPriceTable(map[string]float64{
		models.CategoryAdult:   25.00,
		models.CategoryChild:   12.00,
		models.CategorySenior:  18.00,
		models.CategoryStudent: 15.00,
		models.CategoryFamily:  65.00,
		models.CategoryGroup:   20.00,
	}, 25.00)
}

// PriceFor never fails; unknown categories get the fallback price.
func (t *PriceTable) PriceFor(category string) float64 {
	if price, ok := t.prices[category]; ok {
		return price
	}
	return t.fallback
}
