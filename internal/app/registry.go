package app

import (
	"database/sql"

	"hr-module/internal/auth"
	"hr-module/internal/dashboard"
	"hr-module/internal/employee"
	"hr-module/internal/holiday"
	"hr-module/internal/leave"
	"hr-module/internal/messaging/kafka"
	"hr-module/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(db, employeeRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, outboxRepo)
	holidayService := holiday.NewService(holidayRepo, employeeRepo)
	dashboardService := dashboard.NewService(dashboardRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	holidayHandler := holiday.NewHandler(holidayService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api/v1.0")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
		holiday.RegisterRoutes(api, holidayHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	return nil
}
