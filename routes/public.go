package routes

import (
	"github.com/gin-gonic/gin"

	bookingControllers "github.com/agusputra69/pawranger-api/controllers/booking"
	cartControllers "github.com/agusputra69/pawranger-api/controllers/cart"
	paymentController "github.com/agusputra69/pawranger-api/controllers/payment"
	productcontroller "github.com/agusputra69/pawranger-api/controllers/product"
)

// SetupPublicRoutes registers the storefront endpoints anyone can hit:
// browsing, availability, and the guest cart keyed by guest_id.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Catalog ────────────────
	r.GET("/products", productcontroller.GetProducts(deps.DB))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.DB))
	r.GET("/categories", productcontroller.GetAllCategories(deps.DB))
	r.GET("/categories/:id", productcontroller.GetCategoryByID(deps.DB))

	// ──────────────── Grooming & Care Services ────────────────
	r.GET("/services", bookingControllers.GetServiceCatalog())
	r.GET("/bookings/availability", bookingControllers.GetAvailability(deps.Bookings))

	// ──────────────── Checkout Support ────────────────
	r.GET("/payment-qrs", paymentController.GetPaymentQRs(deps.DB))

	// ──────────────── Guest Cart ────────────────
	guestCart := r.Group("/guest/cart/:guest_id")
	{
		guestCart.GET("", cartControllers.GetGuestCart(deps.Carts))
		guestCart.POST("/items", cartControllers.AddGuestCartItem(deps.DB, deps.Carts))
		guestCart.PUT("/items/:product_id", cartControllers.UpdateGuestCartItem(deps.Carts))
		guestCart.DELETE("/items/:product_id", cartControllers.DeleteGuestCartItem(deps.Carts))
		guestCart.DELETE("", cartControllers.ClearGuestCart(deps.Carts))
	}

	// Real-time order/booking feed for the back-office dashboard
	r.GET("/ws/feed", deps.Hub.Handler())
}
