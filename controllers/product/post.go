package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// CreateProduct creates a new product with an optional category + image upload.
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		if name == "" || priceStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and stock are required"})
			return
		}

		// Optional fields
		brand := c.PostForm("brand")
		description := c.PostForm("description")
		weightStr := c.PostForm("weight")
		categoryIDStr := c.PostForm("category_id")

		// Convert numerics
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}

		var weight float64
		if weightStr != "" {
			if w, parseErr := strconv.ParseFloat(weightStr, 64); parseErr == nil {
				weight = w
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight"})
				return
			}
		}

		var categoryID *uint
		if categoryIDStr != "" {
			id64, parseErr := strconv.ParseUint(categoryIDStr, 10, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			var category models.Category
			if err := db.First(&category, uint(id64)).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			cid := uint(id64)
			categoryID = &cid
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		filename := strings.ReplaceAll(file.Filename, " ", "_")

		saveDir := filepath.Join(uploadDir, "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}
		savePath := filepath.Join(saveDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		// Public URL (served by nginx/gin)
		imageURL := fmt.Sprintf("/uploads/products/%s", filename)

		newProduct := models.Product{
			Name:        name,
			Brand:       brand,
			Description: description,
			CategoryID:  categoryID,
			Price:       price,
			Weight:      weight,
			Stock:       stock,
			Image:       imageURL,
			Active:      true,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		models.LogActivity(db, c.GetString("email"), "product.create", newProduct.Name)
		c.JSON(http.StatusCreated, newProduct)
	}
}
