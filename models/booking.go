package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one grooming/clinic appointment. ServiceName and TotalPrice are
// copied from the service catalog at creation time and never recomputed.
type Booking struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"index" json:"user_id"` // empty for walk-in bookings taken over the phone

	ServiceCode string  `gorm:"not null" json:"service_code"`
	ServiceName string  `json:"service_name"`
	TotalPrice  float64 `json:"total_price"`

	Date     string `gorm:"index:idx_booking_slot;not null" json:"date"` // YYYY-MM-DD
	TimeSlot string `gorm:"index:idx_booking_slot;not null" json:"time_slot"`

	CustomerName  string `gorm:"not null" json:"customer_name"`
	CustomerPhone string `gorm:"not null" json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	PetName    string  `gorm:"not null" json:"pet_name"`
	PetSpecies string  `gorm:"not null" json:"pet_species"`
	PetBreed   string  `json:"pet_breed"`
	PetAge     int     `json:"pet_age_months"`
	PetWeight  float64 `json:"pet_weight_kg"`
	PetNotes   string  `json:"pet_notes"`

	Status    BookingStatus `gorm:"type:VARCHAR(20);default:'pending';index" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
