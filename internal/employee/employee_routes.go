package employee

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.CompanyScope())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByCompany(3, 10),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByCompany(5, 20), // Limit sedikit lebih longgar karena ringan
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByCompany(3, 10),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByCompany(0.1, 1),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByCompany(0.5, 2),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByCompany(0.05, 1),
			handler.Delete,
		)
	}
}
