package models

import "time"

// Pet is a customer's pet profile, shown on the dashboard and used to
// prefill booking forms.
type Pet struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"not null" json:"name"`
	Species   string    `gorm:"not null" json:"species"` // dog, cat, rabbit, ...
	Breed     string    `json:"breed"`
	AgeMonths int       `json:"age_months"`
	WeightKG  float64   `json:"weight_kg"`
	Notes     string    `json:"notes"` // allergies, temperament
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
