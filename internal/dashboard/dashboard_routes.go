package dashboard

import (
	"hr-module/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Dashboard reads require a valid token but no particular role.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	board := r.Group("/Dashboard")
	board.Use(middleware.AuthMiddleware())
	{
		board.GET("/overallstatus", handler.OverallStatus)
		board.GET("/summary", handler.Summary)
	}
}
