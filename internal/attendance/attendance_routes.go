package attendance

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
	attendances := r.Group("/attendances")
	attendances.Use(middleware.CompanyScope())
	attendances.Use(middleware.ContextLogger(logger))
	{
		attendances.GET("",
			middleware.RateLimitByCompany(3, 10),
			handler.GetAll,
		)

		attendances.GET("/:id",
			middleware.RateLimitByCompany(3, 10),
			handler.GetById,
		)

		attendances.POST("",
			middleware.RateLimitByCompany(1, 3),
			handler.Create,
		)

		// Import harian dari timesheet, limit lebih ketat
		attendances.POST("/bulk",
			middleware.RateLimitByCompany(0.2, 1),
			handler.BulkCreate,
		)

		attendances.PUT("/:id",
			middleware.RateLimitByCompany(0.5, 2),
			handler.Update,
		)

		attendances.DELETE("/:id",
			middleware.RateLimitByCompany(0.1, 1),
			handler.Delete,
		)
	}
}
