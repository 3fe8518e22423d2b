package paymentController

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// UploadPaymentQR stores the QRIS/bank QR image customers scan to pay a
// bank-transfer order.
func UploadPaymentQR(db *gorm.DB, uploadDir, publicURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		bankName := c.PostForm("bank_name")
		if bankName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bank_name is required"})
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		saveDir := filepath.Join(uploadDir, "qrfiles")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to create upload folder: %v", err),
			})
			return
		}

		savePath := filepath.Join(saveDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to save file: %v", err),
			})
			return
		}

		fileURL := fmt.Sprintf("%s/uploads/qrfiles/%s", publicURL, filename)

		qr, err := models.SavePaymentQR(db, bankName, filename, fileURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save QR record"})
			return
		}

		log.Printf("📁 Payment QR uploaded: %s -> %s", file.Filename, fileURL)
		models.LogActivity(db, c.GetString("email"), "payment_qr.upload", bankName)

		c.JSON(http.StatusOK, gin.H{
			"message": "File uploaded successfully",
			"data":    qr,
		})
	}
}

// GetPaymentQRs lists the active payment QRs shown at checkout.
func GetPaymentQRs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		qrs, err := models.GetAllPaymentQRs(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment QRs"})
			return
		}
		c.JSON(http.StatusOK, qrs)
	}
}

// DeletePaymentQR removes the QR record and its file on disk.
func DeletePaymentQR(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		var qr models.PaymentQR
		if err := db.First(&qr, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment QR not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query payment QR"})
			return
		}

		filePath := filepath.Join(uploadDir, "qrfiles", qr.FileName)
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file from disk"})
			return
		}

		if err := db.Delete(&qr).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment QR record"})
			return
		}

		log.Printf("🗑️ Payment QR deleted: %s", qr.FileName)
		models.LogActivity(db, c.GetString("email"), "payment_qr.delete", qr.BankName)
		c.JSON(http.StatusOK, gin.H{"message": "Payment QR deleted successfully"})
	}
}
