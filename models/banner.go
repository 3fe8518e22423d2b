package models

import "time"

// Banner is a landing-page promo image.
type Banner struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
