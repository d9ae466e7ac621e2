package app

import (
	"os"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())

	// File payslip disajikan langsung dari storage dir, URL-nya yang
	// disimpan di entry menunjuk ke sini.
	storageDir := os.Getenv("PAYSLIP_STORAGE_DIR")
	if storageDir == "" {
		storageDir = "./storage/payslips"
	}
	baseURL := os.Getenv("PAYSLIP_PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "/files/payslips"
	}
	router.Static(baseURL, storageDir)

	if err := registerModules(router, sqlDB, gormDB, redisClient); err != nil {
		return err
	}

	zap.L().Info("app wired",
		zap.String("payslip_storage_dir", storageDir),
		zap.String("payslip_base_url", baseURL),
	)
	return nil
}
