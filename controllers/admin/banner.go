package adminController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// UploadBanner saves the image under uploads/banners and stores the full
// public URL in the database.
func UploadBanner(db *gorm.DB, uploadDir, publicURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		saveDir := filepath.Join(uploadDir, "banners")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		origName := fileHeader.Filename
		ext := filepath.Ext(origName)
		baseName := strings.TrimSuffix(origName, ext)

		// Strip duplicate extensions like ".jpg.jpg"
		for {
			e := filepath.Ext(baseName)
			if e == ".jpg" || e == ".jpeg" || e == ".png" || e == ".gif" {
				baseName = strings.TrimSuffix(baseName, e)
			} else {
				break
			}
		}

		baseName = strings.ReplaceAll(baseName, " ", "_")
		newFileName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), baseName, ext)
		savePath := filepath.Join(saveDir, newFileName)

		if err := c.SaveUploadedFile(fileHeader, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		imageURL := fmt.Sprintf("%s/uploads/banners/%s", publicURL, newFileName)

		banner := models.Banner{ImageURL: imageURL}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB save failed"})
			return
		}

		models.LogActivity(db, c.GetString("email"), "banner.upload", newFileName)
		c.JSON(http.StatusOK, gin.H{"message": "Banner uploaded", "data": banner})
	}
}

// GetBanners lists banners for the storefront carousel.
func GetBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, banners)
	}
}

// DeleteBanner removes both the DB record and the local file.
func DeleteBanner(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var banner models.Banner

		if err := db.First(&banner, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := filepath.Join(uploadDir, "banners", filepath.Base(banner.ImageURL))
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete from database"})
			return
		}

		models.LogActivity(db, c.GetString("email"), "banner.delete", id)
		c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
	}
}
