package employee

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-dashboard/internal/middleware"
)

// RegisterRoutes mounts the employee resource under /employees. The
// bearer gate covers every route in the group and nothing else.
func RegisterRoutes(
	r *gin.Engine,
	handler *Handler,
	authToken string,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.Auth(authToken))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(50, 100),
			handler.List,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(50, 100),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByIP(10, 20),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.Delete,
		)
	}
}
