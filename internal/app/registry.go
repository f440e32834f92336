package app

import (
	"database/sql"
	"time"

	"go-payslip/internal/auth"
	"go-payslip/internal/auth/token"
	"go-payslip/internal/backup"
	"go-payslip/internal/bootstrap"
	"go-payslip/internal/config"
	"go-payslip/internal/editor"
	"go-payslip/internal/messaging/kafka"
	"go-payslip/internal/middleware"
	"go-payslip/internal/payslip"
	"go-payslip/internal/report"
	"go-payslip/internal/template"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL, token.DefaultRefreshTTL)

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	templateRepo := template.NewRepository(gormDB)
	reportRepo := report.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	sessionStore := editor.NewRedisStore(rdb, cfg.EditorSessionTTL)

	// --- Services ---
	authService := auth.NewService(authRepo, tokens, logger)
	payslipService := payslip.NewService(payslipRepo)
	templateService := template.NewService(templateRepo)
	backupService := backup.NewService(backup.Deps{
		DB:           gormDB,
		Payslips:     payslipService,
		Templates:    templateService,
		PayslipRepo:  payslipRepo,
		TemplateRepo: templateRepo,
		Audit:        bootstrap.NewAuditLogger(logger),
	})
	editorService := editor.NewService(sessionStore, payslipService, templateService)
	reportService := report.NewService(report.Deps{
		DB:        db,
		Repo:      reportRepo,
		Outbox:    outboxRepo,
		Payslips:  payslipService,
		ReportDir: cfg.ReportDir,
		Logger:    logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  tokens.AccessTTL(),
		RefreshTTL: tokens.RefreshTTL(),
	}, logger)
	payslipHandler := payslip.NewHandler(payslipService, logger)
	templateHandler := template.NewHandler(templateService, logger)
	backupHandler := backup.NewHandler(backupService, logger)
	editorHandler := editor.NewHandler(editorService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	idempotent := middleware.Idempotency(rdb, idempotencyTTL, logger)

	api := router.Group("/api/v1")

	public := api.Group("")
	public.Use(middleware.ContextLogger(logger))
	auth.RegisterRoutes(public, authHandler, middleware.AuthMiddleware(tokens))

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(tokens),
		middleware.ExtractUserID(),
		middleware.ContextLogger(logger),
	)
	{
		payslip.RegisterRoutes(protected, payslipHandler, idempotent)
		template.RegisterRoutes(protected, templateHandler, idempotent)
		backup.RegisterRoutes(protected, backupHandler, idempotent)
		editor.RegisterRoutes(protected, editorHandler)
		report.RegisterRoutes(protected, reportHandler, idempotent)
	}

	return nil
}
