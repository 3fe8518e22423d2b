package models

import "time"

// GuestCart represents a cart for guest sessions
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	GuestID   string          `gorm:"uniqueIndex" json:"guest_id"` // Enforces ONE cart per guest
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GuestCartItem mirrors CartItem; guest lines are discarded once they have
// been synced into the user cart on sign-in.
type GuestCartItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CartID          uint      `gorm:"index:idx_guest_cart_product,unique" json:"cart_id"`
	ProductID       uint      `gorm:"index:idx_guest_cart_product,unique" json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductBrand    string    `json:"product_brand"`
	ProductCategory string    `json:"product_category"`
	ProductImage    string    `json:"product_image"`
	ProductStock    int       `json:"product_stock"`
	ProductPrice    float64   `json:"product_price"`
	Weight          float64   `json:"weight"`
	Quantity        int       `json:"quantity"`
	AddedAt         time.Time `json:"added_at"`
}
