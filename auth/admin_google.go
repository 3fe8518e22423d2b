package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/models"
)

// POST /auth/google-admin
//
// Admin login also goes through Google; accounts are created unapproved on
// first sight and an existing admin must approve them before the login
// succeeds.
func GoogleAdminLogin(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		_, email, name, picture, err := verifyGoogleToken(c.Request.Context(), input.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		var admin models.Admin
		err = db.Where("email = ?", email).First(&admin).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			admin = models.Admin{Email: email, Name: name, Picture: picture, Approved: false}
			if err := db.Create(&admin).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register admin"})
				return
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account awaiting approval"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if !admin.Approved {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin account awaiting approval"})
			return
		}

		db.Model(&admin).Updates(models.Admin{Name: name, Picture: picture})
		models.LogActivity(db, admin.Email, "admin.login", "")

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"admin":   admin,
			"token":   issueJWT(email, "admin", email, name, picture, jwtSecret),
		})
	}
}
