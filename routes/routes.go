package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agusputra69/pawranger-api/booking"
	"github.com/agusputra69/pawranger-api/cart"
	"github.com/agusputra69/pawranger-api/config"
	"github.com/agusputra69/pawranger-api/realtime"
)

// Deps bundles everything the route groups need. Handlers receive their
// dependencies explicitly instead of reaching for globals.
type Deps struct {
	Cfg        config.App
	DB         *gorm.DB
	Carts      *cart.Service
	Reconciler *cart.Reconciler
	Bookings   *booking.Service
	Hub        *realtime.Hub
}

// SetupRoutes is the single entry-point that wires up Auth, Public, User,
// and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Storefront routes (no auth; guest cart uses guest_id)
	SetupPublicRoutes(r, deps)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// 4️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
