package ticketing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"museumguide-backend/models"
)

func TestDefaultPriceTable(t *testing.T) {
	table := DefaultPriceTable()

	expected := map[string]float64{
		models.CategoryAdult:   25.00,
		models.CategoryChild:   12.00,
		models.CategorySenior:  18.00,
		models.CategoryStudent: 15.00,
		models.CategoryFamily:  65.00,
		models.CategoryGroup:   20.00,
	}
	for category, price := range expected {
		assert.Equal(t, price, table.PriceFor(category), "category %s", category)
	}
}

func TestPriceTable_FallbackForUnknownCategory(t *testing.T) {
	table := DefaultPriceTable()

	assert.Equal(t, 25.00, table.PriceFor("VIP"))
	assert.Equal(t, 25.00, table.PriceFor(""))
	assert.Equal(t, 25.00, table.PriceFor("adult")) // categories are case sensitive
}

func TestPriceTable_CustomTable(t *testing.T) {
	table := NewPriceTable(map[string]float64{"Member": 0}, 10.00)

	assert.Equal(t, 0.00, table.PriceFor("Member"))
	assert.Equal(t, 10.00, table.PriceFor("Adult"))
}

func TestPriceTable_CopiesInput(t *testing.T) {
	prices := map[string]float64{"Adult": 25.00}
	table := NewPriceTable(prices, 25.00)

	prices["Adult"] = 99.00

	assert.Equal(t, 25.00, table.PriceFor("Adult"))
}
