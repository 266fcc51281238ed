package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "tracker/internal/interfaces/http/handlers/user"
	"tracker/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		// /me before any parameterized path
		users.GET("/me", config.UserHandler.GetMe)
		users.GET("", config.UserHandler.ListUsers)
	}
}
