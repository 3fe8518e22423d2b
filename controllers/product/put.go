package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// UpdateProduct updates an existing product by ID.
// Accepts the same fields as CreateProduct and an optional "image" file.
func UpdateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		// Helper to parse float fields safely
		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}

		parseInt := func(val string) *int {
			if val == "" {
				return nil
			}
			if i, err := strconv.Atoi(val); err == nil {
				return &i
			}
			return nil
		}

		// Parse form fields (optional updates)
		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("brand"); v != "" {
			product.Brand = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := parseFloat(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := parseFloat(c.PostForm("weight")); v != nil {
			product.Weight = *v
		}
		if v := parseInt(c.PostForm("stock")); v != nil {
			product.Stock = *v
		}
		if v := c.PostForm("active"); v != "" {
			product.Active = v == "true" || v == "1"
		}

		if categoryIDStr := c.PostForm("category_id"); categoryIDStr != "" {
			if id64, parseErr := strconv.ParseUint(categoryIDStr, 10, 64); parseErr == nil {
				var category models.Category
				if err := db.First(&category, uint(id64)).Error; err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
					return
				}
				cid := uint(id64)
				product.CategoryID = &cid
			}
		}

		// Handle optional image upload
		file, err := c.FormFile("image")
		if err == nil {
			saveDir := filepath.Join(uploadDir, "products")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			// Unique filename so clients never see a stale cached image
			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			savePath := filepath.Join(saveDir, filename)

			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}

			product.Image = fmt.Sprintf("/uploads/products/%s", filename)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		models.LogActivity(db, c.GetString("email"), "product.update", fmt.Sprintf("id=%d", product.ID))
		c.JSON(http.StatusOK, product)
	}
}
