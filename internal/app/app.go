package app

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"employee-dashboard/internal/config"
	"employee-dashboard/internal/shared/connection"
	"employee-dashboard/internal/shared/response"
)

const apiVersion = "1.0.0"

// BuildApp connects the store and wires every module into the router.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	db, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return err
	}

	router.Use(cors.Default())

	// Health route sits outside the bearer gate.
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Employee Dashboard API is running",
			"version": apiVersion,
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", "")
	})

	registerModules(router, db, cfg)

	return nil
}
