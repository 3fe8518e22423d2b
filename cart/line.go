package cart

import (
	"math"
	"time"

	"github.com/agusputra69/pawranger-api/models"
)

// Line is the one cart-line shape used by the facade regardless of which
// store a line came from. Snapshot fields reflect the product at the time it
// was added, not live catalog state.
type Line struct {
	RemoteRowID uint    `json:"remote_row_id,omitempty"` // cart_items primary key; zero for guest-only lines
	ProductID   uint    `json:"product_id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	UnitPrice   float64 `json:"unit_price"`
	Weight      float64 `json:"weight"`
	Stock       int     `json:"stock"`
	Quantity    int     `json:"quantity"`
}

// Tax and shipping policy. Checkout reuses these numbers so the cart page
// and the stored order always agree.
const (
	TaxRate               = 0.10
	FreeShippingThreshold = 500000.0
	FlatShippingFee       = 15000.0
)

type Totals struct {
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Shipping  float64 `json:"shipping"`
	Total     float64 `json:"total"`
}

// ComputeTotals is a pure derivation over the current lines; it is never
// stored and must be recomputed after every mutation.
func ComputeTotals(lines []Line) Totals {
	var t Totals
	for _, line := range lines {
		t.ItemCount += line.Quantity
		t.Subtotal += line.UnitPrice * float64(line.Quantity)
	}
	if t.ItemCount == 0 {
		return t
	}
	t.Tax = math.Round(t.Subtotal * TaxRate)
	if t.Subtotal < FreeShippingThreshold {
		t.Shipping = FlatShippingFee
	}
	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}

// FromProduct builds a fresh line from a live product row.
func FromProduct(p models.Product, qty int) Line {
	category := ""
	if p.Category != nil {
		category = p.Category.Name
	}
	return Line{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  category,
		Image:     p.Image,
		UnitPrice: p.Price,
		Weight:    p.Weight,
		Stock:     p.Stock,
		Quantity:  qty,
	}
}

// FromCartItem maps a persisted user-cart row into a Line.
func FromCartItem(it models.CartItem) Line {
	return Line{
		RemoteRowID: it.ID,
		ProductID:   it.ProductID,
		Name:        it.ProductName,
		Brand:       it.ProductBrand,
		Category:    it.ProductCategory,
		Image:       it.ProductImage,
		UnitPrice:   it.ProductPrice,
		Weight:      it.Weight,
		Stock:       it.ProductStock,
		Quantity:    it.Quantity,
	}
}

// FromGuestCartItem maps a guest-cart row into a Line. Guest lines carry no
// remote row id until the reconciler syncs them.
func FromGuestCartItem(it models.GuestCartItem) Line {
	return Line{
		ProductID: it.ProductID,
		Name:      it.ProductName,
		Brand:     it.ProductBrand,
		Category:  it.ProductCategory,
		Image:     it.ProductImage,
		UnitPrice: it.ProductPrice,
		Weight:    it.Weight,
		Stock:     it.ProductStock,
		Quantity:  it.Quantity,
	}
}

func (l Line) toCartItem(cartID uint, now time.Time) models.CartItem {
	return models.CartItem{
		ID:              l.RemoteRowID,
		CartID:          cartID,
		ProductID:       l.ProductID,
		ProductName:     l.Name,
		ProductBrand:    l.Brand,
		ProductCategory: l.Category,
		ProductImage:    l.Image,
		ProductStock:    l.Stock,
		ProductPrice:    l.UnitPrice,
		Weight:          l.Weight,
		Quantity:        l.Quantity,
		AddedAt:         now,
	}
}

func (l Line) toGuestCartItem(cartID uint, now time.Time) models.GuestCartItem {
	return models.GuestCartItem{
		CartID:          cartID,
		ProductID:       l.ProductID,
		ProductName:     l.Name,
		ProductBrand:    l.Brand,
		ProductCategory: l.Category,
		ProductImage:    l.Image,
		ProductStock:    l.Stock,
		ProductPrice:    l.UnitPrice,
		Weight:          l.Weight,
		Quantity:        l.Quantity,
		AddedAt:         now,
	}
}
