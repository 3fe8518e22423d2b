package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agusputra69/pawranger-api/models"
)

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Zero(t, totals.ItemCount)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Shipping, "an empty cart never pays shipping")
	assert.Zero(t, totals.Total)
}

func TestComputeTotalsBelowFreeShippingThreshold(t *testing.T) {
	lines := []Line{{ProductID: 7, UnitPrice: 65000, Quantity: 2}}

	totals := ComputeTotals(lines)

	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 130000.0, totals.Subtotal)
	assert.Equal(t, 13000.0, totals.Tax)
	assert.Equal(t, FlatShippingFee, totals.Shipping)
	assert.Equal(t, 158000.0, totals.Total)
}

func TestComputeTotalsFreeShipping(t *testing.T) {
	lines := []Line{{ProductID: 42, UnitPrice: 285000, Quantity: 3}}

	totals := ComputeTotals(lines)

	assert.Equal(t, 855000.0, totals.Subtotal)
	assert.Zero(t, totals.Shipping)
	assert.Equal(t, 940500.0, totals.Total)
}

func TestFromProductWithoutCategory(t *testing.T) {
	p := models.Product{
		ID: 7, Name: "Oatmeal Dog Shampoo", Brand: "PawSuds",
		Price: 65000, Weight: 0.4, Stock: 25,
		Rating: 4.6, ReviewCount: 12, Active: true,
	}

	line := FromProduct(p, 1)

	assert.Equal(t, "", line.Category, "uncategorized products map to an empty category name")
	assert.Equal(t, p.Price, line.UnitPrice)
	assert.Equal(t, p.Stock, line.Stock)
}

func TestLineMappingRoundTrip(t *testing.T) {
	cat := models.Category{ID: 3, Name: "Food"}
	p := models.Product{
		ID: 42, Name: "Premium Cat Food 5kg", Brand: "Whiskers",
		CategoryID: &cat.ID, Category: &cat,
		Price: 285000, Weight: 5, Image: "/uploads/products/catfood.jpg",
		Stock: 10,
	}

	line := FromProduct(p, 2)
	assert.Equal(t, "Food", line.Category)
	assert.Zero(t, line.RemoteRowID, "fresh lines have no remote row yet")

	now := time.Now()
	item := line.toCartItem(9, now)
	got := FromCartItem(item)
	got.RemoteRowID = 0 // primary key is assigned by the DB
	assert.Equal(t, line, got)

	guestItem := line.toGuestCartItem(9, now)
	assert.Equal(t, line, FromGuestCartItem(guestItem))
}
