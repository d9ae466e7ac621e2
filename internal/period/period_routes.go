package period

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
	periods := r.Group("/periods")
	periods.Use(middleware.CompanyScope())
	periods.Use(middleware.ContextLogger(logger))
	{
		periods.GET("",
			middleware.RateLimitByCompany(3, 10),
			handler.GetAll,
		)

		periods.GET("/:id",
			middleware.RateLimitByCompany(3, 10),
			handler.GetById,
		)

		periods.POST("",
			middleware.RateLimitByCompany(0.5, 2),
			handler.Create,
		)

		periods.POST("/generate",
			middleware.RateLimitByCompany(0.5, 2),
			handler.GenerateNext,
		)

		periods.PUT("/:id",
			middleware.RateLimitByCompany(0.5, 2),
			handler.Update,
		)

		periods.DELETE("/:id",
			middleware.RateLimitByCompany(0.1, 1),
			handler.Delete,
		)
	}
}
