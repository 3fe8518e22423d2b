package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/cart"
	"github.com/agusputra69/pawranger-api/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"` // <= 0 removes the line
}

func ownerFromContext(c *gin.Context) (cart.Owner, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return cart.Owner{}, false
	}
	userID, _ := userIDVal.(string)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return cart.Owner{}, false
	}
	return cart.Owner{UserID: userID}, true
}

func parseProductID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return 0, false
	}
	return uint(id64), true
}

// renderCartError translates facade errors into user-facing responses.
// Validation failures block the mutation; everything else is a generic
// message so BaaS internals never leak to the storefront.
func renderCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrStockExceeded):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requested quantity exceeds available stock"})
	case errors.Is(err, cart.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}

func fetchProduct(c *gin.Context, db *gorm.DB, productID uint) (models.Product, bool) {
	var product models.Product
	err := db.Preload("Category").First(&product, "id = ? AND active = ?", productID, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		return product, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
		return product, false
	}
	return product, true
}

// GET /user/cart
func GetUserCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}

		lines, totals, err := svc.Cart(c.Request.Context(), owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": lines, "totals": totals})
	}
}

// POST /user/cart/items
func AddCartItem(db *gorm.DB, svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
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

// PUT /user/cart/items/:product_id
func UpdateCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
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
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// DELETE /user/cart/items/:product_id
func DeleteCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
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
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerFromContext(c)
		if !ok {
			return
		}

		if err := svc.ClearCart(c.Request.Context(), owner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		lines, totals, err := svc.Cart(c.Request.Context(), cart.Owner{UserID: userID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": lines, "totals": totals})
	}
}
