package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"employee-dashboard/internal/config"
	"employee-dashboard/internal/employee"
)

func registerModules(router *gin.Engine, db *gorm.DB, cfg config.Config) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, cfg.IsDevelopment())

	// --- Routes Registration ---
	employee.RegisterRoutes(router, employeeHandler, cfg.AuthToken, zap.L())
}
