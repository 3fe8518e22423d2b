package adminController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// GET /admin/activity?admin_email=&action=&page=&limit=
func GetActivityLog(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if limit < 1 || limit > 200 {
			limit = 50
		}

		query := db.Model(&models.ActivityLog{})
		if email := c.Query("admin_email"); email != "" {
			query = query.Where("admin_email = ?", email)
		}
		if action := c.Query("action"); action != "" {
			query = query.Where("action = ?", action)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count activity log"})
			return
		}

		var entries []models.ActivityLog
		if err := query.Order("created_at DESC").
			Limit(limit).Offset((page - 1) * limit).
			Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity log"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"entries": entries,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}
