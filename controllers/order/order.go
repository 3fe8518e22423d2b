package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agusputra69/pawranger-api/cart"
	"github.com/agusputra69/pawranger-api/models"
	"github.com/agusputra69/pawranger-api/realtime"
)

// -------- Request Structs --------

type SubmitTransferProofRequest struct {
	TransferRef string `json:"transfer_ref" binding:"required"`
}

type VerifyPaymentRequest struct {
	Approved bool `json:"approved"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20260908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder converts the user's cart into an order. Stock rows are locked
// for the whole transaction so two checkouts cannot oversell the same item.
func PlaceOrder(db *gorm.DB, userID string) (models.Order, error) {
	var userCart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&userCart).Error; err != nil {
		return models.Order{}, err
	}
	if len(userCart.Items) == 0 {
		return models.Order{}, errors.New("cart is empty")
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var lines []cart.Line
		var orderItems []models.OrderItem

		for _, item := range userCart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return errors.New("product no longer available: " + item.ProductName)
			}

			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}

			// Deduct stock
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			lines = append(lines, cart.FromCartItem(item))
			orderItems = append(orderItems, models.OrderItem{
				ProductID:       item.ProductID,
				ProductName:     item.ProductName,
				ProductBrand:    item.ProductBrand,
				ProductCategory: item.ProductCategory,
				ProductImage:    item.ProductImage,
				ProductPrice:    item.ProductPrice,
				Weight:          item.Weight,
				Quantity:        item.Quantity,
			})
		}

		totals := cart.ComputeTotals(lines)

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			Subtotal:      totals.Subtotal,
			Tax:           totals.Tax,
			ShippingCost:  totals.Shipping,
			TotalAmount:   totals.Total,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: models.PaymentMethodBankTransfer,
			CreatedAt:     time.Now(),
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items
		return tx.Where("cart_id = ?", userCart.CartID).Delete(&models.CartItem{}).Error
	})
	return order, err
}

// -------- Handlers --------

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB, hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, err := PlaceOrder(db, userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hub.Broadcast("order.created", gin.H{
			"order_ref":    order.OrderRef,
			"user_id":      order.UserID,
			"total_amount": order.TotalAmount,
		})
		c.JSON(http.StatusCreated, order)
	}
}

// PUT /user/orders/:orderID/transfer-proof
//
// Customer pastes the bank transfer reference; payment moves to in_review
// until staff verify it.
func SubmitTransferProofHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("orderID")

		var req SubmitTransferProofRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if order.PaymentStatus == models.PaymentStatusPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order is already paid"})
			return
		}

		updates := models.Order{
			TransferRef:   req.TransferRef,
			PaymentStatus: models.PaymentStatusInReview,
		}
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit transfer proof"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transfer proof submitted, awaiting verification"})
	}
}

// PUT /admin/orders/:orderID/verify-payment
func VerifyPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		if order.PaymentStatus != models.PaymentStatusInReview {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order has no payment awaiting review"})
			return
		}

		newStatus := models.PaymentStatusFailed
		action := "order.reject_payment"
		if req.Approved {
			newStatus = models.PaymentStatusPaid
			action = "order.verify_payment"
		}

		if err := db.Model(&order).Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}

		models.LogActivity(db, c.GetString("email"), action, order.OrderRef)
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated", "payment_status": newStatus})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
			query = query.Where("payment_status = ?", paymentStatus)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID — numeric id or order_ref both work
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Where("id::text = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		models.LogActivity(db, c.GetString("email"), "order.update_status", orderID+" -> "+string(newStatus))
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}

		models.LogActivity(db, c.GetString("email"), "order.delete", orderID)
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
