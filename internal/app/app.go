package app

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"go-payslip/internal/auth"
	"go-payslip/internal/config"
	"go-payslip/internal/messaging/kafka"
	"go-payslip/internal/payslip"
	"go-payslip/internal/report"
	"go-payslip/internal/shared/connection"
	"go-payslip/internal/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects storage and mounts every module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, cfg, sqlDB, gormDB, redisClient)
}

// openDatabase connects postgres and prepares the schema. GORM models are
// migrated only with DB_AUTO_MIGRATE; the raw SQL tables are always ensured.
func openDatabase(cfg *config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.PostgresOptions{
		Host:     cfg.Database.Host,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		Port:     cfg.Database.Port,
		SSLMode:  cfg.Database.SSLMode,
	}, cfg.ConnectRetries)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := gormDB.AutoMigrate(&auth.User{}, &payslip.Payslip{}, &template.Template{}); err != nil {
			return nil, nil, err
		}
	}

	ctx := context.Background()
	if err := kafka.EnsureOutboxSchema(ctx, sqlDB); err != nil {
		return nil, nil, err
	}
	if err := report.EnsureSchema(ctx, sqlDB); err != nil {
		return nil, nil, err
	}

	return gormDB, sqlDB, nil
}

func waitForShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
