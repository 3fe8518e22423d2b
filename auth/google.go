package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/cart"
	"github.com/agusputra69/pawranger-api/models"
)

type googleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
	GuestID string `json:"guest_id"`
}

// POST /auth/google-user
//
// Verifies the Google ID token, creates or refreshes the user row, then
// hands the guest cart to the reconciler. A failed sync never blocks the
// login; the guest cart just stays behind for the next attempt.
func GoogleUserLogin(db *gorm.DB, rec *cart.Reconciler, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		uid, email, name, picture, err := verifyGoogleToken(c.Request.Context(), input.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
			return
		}

		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", uid).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				ID:       uid,
				Email:    email,
				Name:     name,
				Picture:  picture,
				Provider: "google",
				Cart:     models.Cart{UserID: uid},
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		case err == nil:
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		mergeStatus := "no-guest-cart"
		if input.GuestID != "" {
			synced, syncErr := rec.SyncOnSignIn(c.Request.Context(), input.GuestID, user.ID)
			switch {
			case syncErr != nil:
				mergeStatus = "merge-failed"
			case synced > 0:
				mergeStatus = "merged-success"
			default:
				mergeStatus = "guest-cart-empty"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"merge_status": mergeStatus,
			"user":         user,
			"token":        issueJWT(email, "user", user.ID, name, picture, jwtSecret),
		})
	}
}

type logoutInput struct {
	GuestID string `json:"guest_id"`
}

// POST /auth/logout
//
// Sessions are stateless JWTs, so the only server-side work is resetting
// the guest-session cart; the next anonymous visit starts empty.
func Logout(rec *cart.Reconciler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input logoutInput
		_ = c.ShouldBindJSON(&input)

		if err := rec.ResetOnSignOut(c.Request.Context(), input.GuestID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// issueJWT generates a session token.
func issueJWT(email, role, userID, name, picture, secret string) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"name":    name,
		"picture": picture,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return ""
	}
	return signedToken
}
