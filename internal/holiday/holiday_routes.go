package holiday

import (
	"hr-module/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Holiday reads live under the historical /Employee prefix; the
// doubled segment on the upcoming route is part of the published API.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	holidays := r.Group("/Employee")
	holidays.Use(middleware.AuthMiddleware())
	{
		holidays.GET("/hrholiday/GetAll", handler.GetAll)
		holidays.GET("/Employee/GetUpComingHoliday/:id", handler.GetUpcoming)
	}
}
