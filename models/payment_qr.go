package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// PaymentQR is the static bank-transfer QR image shown on the checkout page.
type PaymentQR struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	BankName  string         `json:"bank_name" gorm:"not null"`
	FileName  string         `json:"file_name" gorm:"not null"`
	FileURL   string         `json:"file_url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func SavePaymentQR(db *gorm.DB, bankName, fileName, fileURL string) (*PaymentQR, error) {
	qr := &PaymentQR{
		BankName: bankName,
		FileName: fileName,
		FileURL:  fileURL,
	}
	if err := db.Create(qr).Error; err != nil {
		return nil, err
	}

	log.Printf("📁 Saved payment QR in DB: %s -> %s", fileName, fileURL)
	return qr, nil
}

func GetAllPaymentQRs(db *gorm.DB) ([]PaymentQR, error) {
	var files []PaymentQR
	if err := db.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
