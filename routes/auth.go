package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/agusputra69/pawranger-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/google-user", auth.GoogleUserLogin(deps.DB, deps.Reconciler, deps.Cfg.JWTSecret))
		authGroup.POST("/google-admin", auth.GoogleAdminLogin(deps.DB, deps.Cfg.JWTSecret))
		authGroup.POST("/guest", auth.CreateGuestUser(deps.DB, deps.Cfg.JWTSecret))
		authGroup.POST("/logout", auth.Logout(deps.Reconciler))
	}
}
