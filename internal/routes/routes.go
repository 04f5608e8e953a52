package routes

import (
	"movieblend_backend/internal/handlers"
	"movieblend_backend/internal/logger"
	"movieblend_backend/internal/middleware"
	"movieblend_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP и WebSocket маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
) {
	// Liveness-проверка вне версионированного API
	appHandlers.HealthHandler.RegisterRoutes(ginRouter.Group(""))

	// Регистрация HTTP API v1
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.FriendshipHandler.RegisterRoutes(api)
		appHandlers.MovieHandler.RegisterRoutes(api)
		appHandlers.PlaylistHandler.RegisterRoutes(api)
		appHandlers.BlendHandler.RegisterRoutes(api)
	}

	// Регистрация WebSocket
	wsGroup := ginRouter.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware())
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /ws registered")
}
