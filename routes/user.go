package routes

import (
	"github.com/gin-gonic/gin"

	bookingControllers "github.com/agusputra69/pawranger-api/controllers/booking"
	cartControllers "github.com/agusputra69/pawranger-api/controllers/cart"
	orderControllers "github.com/agusputra69/pawranger-api/controllers/order"
	userControllers "github.com/agusputra69/pawranger-api/controllers/user"
	"github.com/agusputra69/pawranger-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(deps.Cfg.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(deps.DB))
		userGroup.PUT("", userControllers.UpdateUser(deps.DB))

		// ──────────────── Pets ────────────────
		petGroup := userGroup.Group("/pets")
		{
			petGroup.GET("", userControllers.GetPets(deps.DB))
			petGroup.POST("", userControllers.CreatePet(deps.DB))
			petGroup.PUT("/:id", userControllers.UpdatePet(deps.DB))
			petGroup.DELETE("/:id", userControllers.DeletePet(deps.DB))
		}

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(deps.Carts))
			cartGroup.POST("/items", cartControllers.AddCartItem(deps.DB, deps.Carts))
			cartGroup.PUT("/items/:product_id", cartControllers.UpdateCartItem(deps.Carts))
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(deps.Carts))
			cartGroup.DELETE("", cartControllers.ClearUserCart(deps.Carts))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("", orderControllers.PlaceOrderHandler(deps.DB, deps.Hub))
			orderGroup.GET("", orderControllers.GetUserOrdersHandler(deps.DB))
			orderGroup.PUT("/:orderID/transfer-proof", orderControllers.SubmitTransferProofHandler(deps.DB))
		}

		// ──────────────── Bookings ────────────────
		bookingGroup := userGroup.Group("/bookings")
		{
			bookingGroup.POST("", bookingControllers.CreateBooking(deps.Bookings, deps.Hub))
			bookingGroup.GET("", bookingControllers.GetUserBookings(deps.DB))
		}
	}
}
