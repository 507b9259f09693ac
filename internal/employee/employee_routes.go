package employee

import (
	"hr-module/internal/domain"
	"hr-module/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/Employee")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.POST("/CreateEmployee",
			middleware.RequireRole(domain.RoleHRAdmin, domain.RoleSuperAdmin),
			handler.Create,
		)
		employees.GET("/GetEmployee/:id", handler.GetByID)
		employees.PUT("/UpdateEmployeeBasic/:id", handler.Update)
		employees.DELETE("/DeactivateEmployee/:id",
			middleware.RequireRole(domain.RoleHRAdmin, domain.RoleSuperAdmin),
			handler.Deactivate,
		)
	}
}
