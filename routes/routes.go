package routes

import (
	"github.com/gin-gonic/gin"

	"backend/config"
	"backend/controllers"
	"backend/middleware"
	"backend/models"
	"backend/storage"
)

func InitializeRoutes(router *gin.Engine, store *storage.Store, cfg *config.Config) {
	auth := controllers.NewAuthController(store, cfg)
	sessions := controllers.NewSessionController(store, cfg)
	attempts := controllers.NewAttemptController(store, cfg)

	api := router.Group("/api")

	public := api.Group("/auth")
	{
		public.POST("/player-login-old", auth.PlayerLoginOld)
		public.POST("/admin-login", auth.AdminLogin)
		public.POST("/player-register", auth.PlayerRegister)
	}

	protected := api.Group("/sessions")
	protected.Use(middleware.RequireAuth(cfg.Secret))
	{
		protected.GET("", sessions.List)
		protected.POST("", middleware.RequireRole(models.RoleAdmin), sessions.Create)
		protected.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), sessions.Delete)

		protected.GET("/:id/leaderboard", attempts.Leaderboard)
		protected.GET("/:id/attempts", attempts.List)
		protected.POST("/:id/attempts", middleware.RequireRole(models.RolePlayer), attempts.Submit)
	}
}
