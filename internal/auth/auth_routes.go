package auth

import (
	"hr-module/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	account := r.Group("/Account")
	{
		account.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		account.POST("/superAdmin/setup", middleware.RateLimitByIP(0.1, 2), handler.SetupSuperAdmin)
	}
}
