package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.CompanyScope())
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.GET("",
			middleware.RateLimitByCompany(3, 10),
			handler.GetAll,
		)

		payrolls.GET("/:id",
			middleware.RateLimitByCompany(3, 10),
			handler.GetById,
		)

		payrolls.GET("/:id/payslip",
			middleware.RateLimitByCompany(3, 10),
			handler.GetPayslip,
		)

		payrolls.GET("/:id/payslip/download",
			middleware.RateLimitByCompany(3, 10),
			handler.DownloadPayslip,
		)

		if redisClient != nil {
			payrolls.POST("",
				middleware.Idempotency(redisClient),
				middleware.RateLimitByCompany(0.5, 2),
				handler.Create,
			)
		} else {
			payrolls.POST("",
				middleware.RateLimitByCompany(0.5, 2),
				handler.Create,
			)
		}

		payrolls.POST("/generate",
			middleware.RateLimitByCompany(0.1, 1),
			handler.GenerateForPeriod,
		)

		payrolls.POST("/:id/approve",
			middleware.RateLimitByCompany(0.5, 2),
			handler.Approve,
		)

		payrolls.POST("/:id/mark-paid",
			middleware.RateLimitByCompany(0.5, 2),
			handler.MarkAsPaid,
		)

		payrolls.POST("/:id/payslip/generate",
			middleware.RateLimitByCompany(0.2, 1),
			handler.GeneratePayslip,
		)

		payrolls.PUT("/:id",
			middleware.RateLimitByCompany(0.5, 2),
			handler.Update,
		)

		payrolls.DELETE("/:id",
			middleware.RateLimitByCompany(0.1, 1),
			handler.Delete,
		)
	}
}
