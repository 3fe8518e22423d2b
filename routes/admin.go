package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/agusputra69/pawranger-api/controllers/admin"
	bookingControllers "github.com/agusputra69/pawranger-api/controllers/booking"
	cartControllers "github.com/agusputra69/pawranger-api/controllers/cart"
	orderControllers "github.com/agusputra69/pawranger-api/controllers/order"
	paymentController "github.com/agusputra69/pawranger-api/controllers/payment"
	productcontroller "github.com/agusputra69/pawranger-api/controllers/product"
	userControllers "github.com/agusputra69/pawranger-api/controllers/user"
	"github.com/agusputra69/pawranger-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(deps.Cfg.AdminAPIKey))
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(deps.DB))
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))
		adminGroup.GET("/activity", adminController.GetActivityLog(deps.DB))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB, deps.Cfg.UploadDir))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB, deps.Cfg.UploadDir))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.DB, deps.Cfg.UploadDir))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.DB, deps.Cfg.UploadDir))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.DB, deps.Cfg.UploadDir))
		}

		// ─────────── Orders & Payments ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(deps.DB))
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(deps.DB))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(deps.DB))
			orderAdmin.PUT("/:orderID/verify-payment", orderControllers.VerifyPaymentHandler(deps.DB))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(deps.DB))
		}

		// ─────────── Bookings ───────────
		bookingAdmin := adminGroup.Group("/bookings")
		{
			bookingAdmin.GET("", bookingControllers.ListBookings(deps.Bookings))
			bookingAdmin.PUT("/:id/status", bookingControllers.UpdateBookingStatus(deps.DB, deps.Bookings))
			bookingAdmin.GET("/export", bookingControllers.ExportDaySheet(deps.Bookings))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(deps.DB))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(deps.DB))
			adminMgmt.POST("/reject", adminController.RejectAdmin(deps.DB))
		}

		// ─────────── Banners & Payment QRs ───────────
		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(deps.DB, deps.Cfg.UploadDir, deps.Cfg.PublicURL))
			bannerMgmt.GET("", adminController.GetBanners(deps.DB))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(deps.DB, deps.Cfg.UploadDir))
		}
		qrMgmt := adminGroup.Group("/payment-qrs")
		{
			qrMgmt.POST("", paymentController.UploadPaymentQR(deps.DB, deps.Cfg.UploadDir, deps.Cfg.PublicURL))
			qrMgmt.DELETE("/:id", paymentController.DeletePaymentQR(deps.DB, deps.Cfg.UploadDir))
		}

		// ─────────── Customer Cart Lookup ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(deps.Carts))
		}
	}
}
