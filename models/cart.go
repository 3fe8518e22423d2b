package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem carries a read-time snapshot of the product next to the quantity;
// snapshot fields are not refreshed after the add.
type CartItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CartID          uint      `gorm:"index:idx_cart_product,unique" json:"cart_id"`
	ProductID       uint      `gorm:"index:idx_cart_product,unique" json:"product_id"`
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
