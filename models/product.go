package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a pet-supply catalog item. Rating and ReviewCount are
// denormalized review aggregates; Active hides a product from the
// storefront without deleting it.
type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Brand       string         `json:"brand"`
	Description string         `json:"description"`
	CategoryID  *uint          `gorm:"index" json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Price       float64        `gorm:"not null" json:"price"`
	Weight      float64        `json:"weight"` // kg, used for shipping
	Stock       int            `json:"stock"`
	Image       string         `json:"image"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
	Active      bool           `gorm:"default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
