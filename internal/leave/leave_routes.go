package leave

import (
	"hr-module/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		submit := authed.Group("")
		submit.Use(middleware.RateLimitByUser(1, 10), middleware.Idempotency(rdb))
		{
			submit.POST("/LeaveDetails", handler.SubmitFullDay)
			submit.POST("/HalfDayLeaveDetails", handler.SubmitHalfDay)
		}

		authed.POST("/LeaveDetails/approve", handler.Decide)
		authed.DELETE("/LeaveDetails/Cancel/:id", handler.Cancel)
		authed.GET("/LeaveDetails/GetByReportingOfficerId/:id", handler.ListForManager)
		authed.GET("/LeaveAccounts/GetLeaveSummarybyEmployeeId/:id", handler.Summary)
	}
}
