package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// ImportProductsFromExcel bulk-creates or updates products from an uploaded
// spreadsheet. Column layout matches the export: ID, Name, Brand,
// Description, Price, Weight, Stock, Image, CategoryID, Active.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			brand := get(2)
			description := get(3)
			price, err1 := strconv.ParseFloat(get(4), 64)
			weight, _ := strconv.ParseFloat(get(5), 64)
			stock, _ := strconv.Atoi(get(6))
			image := get(7)
			categoryIDStr := get(8)
			activeStr := get(9)

			if name == "" || err1 != nil {
				skippedCount++
				continue
			}

			var categoryID *uint
			if categoryIDStr != "" {
				if id, err := strconv.Atoi(categoryIDStr); err == nil {
					cid := uint(id)
					categoryID = &cid
				}
			}

			active := true
			if activeStr != "" {
				active = activeStr == "true" || activeStr == "1"
			}

			product := models.Product{
				Name:        name,
				Brand:       brand,
				Description: description,
				Price:       price,
				Weight:      weight,
				Stock:       stock,
				Image:       image,
				CategoryID:  categoryID,
				Active:      active,
			}

			if idStr != "" {
				if id, err := strconv.Atoi(idStr); err == nil {
					var existing models.Product
					if err := db.First(&existing, id).Error; err == nil {
						existing.Name = product.Name
						existing.Brand = product.Brand
						existing.Description = product.Description
						existing.Price = product.Price
						existing.Weight = product.Weight
						existing.Stock = product.Stock
						existing.Image = product.Image
						existing.CategoryID = product.CategoryID
						existing.Active = product.Active

						if err := db.Save(&existing).Error; err == nil {
							updatedCount++
							continue
						}
					}
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		models.LogActivity(db, c.GetString("email"), "product.import",
			"created="+strconv.Itoa(createdCount)+" updated="+strconv.Itoa(updatedCount))

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
