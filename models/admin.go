package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"unique" json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Approved bool   `json:"approved"`
}

// ActivityLog records staff actions in the back-office.
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminEmail string    `gorm:"index" json:"admin_email"`
	Action     string    `gorm:"not null" json:"action"` // e.g. "product.update", "order.verify_payment"
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

// LogActivity records a staff action. Logging is best-effort and never
// blocks the action itself.
func LogActivity(db *gorm.DB, adminEmail, action, detail string) {
	entry := ActivityLog{AdminEmail: adminEmail, Action: action, Detail: detail}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("❌ Failed to write activity log (%s): %v", action, err)
	}
}
