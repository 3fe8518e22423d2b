package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/cart"
)

func guestOwner(c *gin.Context) (cart.Owner, bool) {
	guestID := c.Param("guest_id")
	if guestID == "" {
		guestID = c.Query("guest_id")
	}
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return cart.Owner{}, false
	}
	return cart.Owner{GuestID: guestID}, true
}

// GET /guest/cart/:guest_id
func GetGuestCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := guestOwner(c)
		if !ok {
			return
		}

		lines, totals, err := svc.Cart(c.Request.Context(), owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": lines, "totals": totals})
	}
}

// POST /guest/cart/:guest_id/items
//
// Guest adds skip the stock ceiling on purpose: anonymous carts are a
// wishlist until sign-in, and checkout re-validates stock anyway.
func AddGuestCartItem(db *gorm.DB, svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := guestOwner(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := fetchProduct(c, db, input.ProductID)
		if !ok {
			return
		}

		line, err := svc.AddToCart(c.Request.Context(), owner, product, input.Quantity)
		if err != nil {
			renderCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, line)
	}
}

// PUT /guest/cart/:guest_id/items/:product_id
func UpdateGuestCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := guestOwner(c)
		if !ok {
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := svc.UpdateQuantity(c.Request.Context(), owner, productID, input.Quantity); err != nil {
			renderCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart item updated"})
	}
}

// DELETE /guest/cart/:guest_id/items/:product_id
func DeleteGuestCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := guestOwner(c)
		if !ok {
			return
		}
		productID, ok := parseProductID(c)
		if !ok {
			return
		}

		if err := svc.RemoveFromCart(c.Request.Context(), owner, productID); err != nil {
			renderCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart item deleted"})
	}
}

// DELETE /guest/cart/:guest_id
func ClearGuestCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := guestOwner(c)
		if !ok {
			return
		}

		if err := svc.ClearCart(c.Request.Context(), owner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}
