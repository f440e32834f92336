package app

import (
	"context"

	"go-payslip/internal/config"
	"go-payslip/internal/events"
	"go-payslip/internal/messaging/kafka"
	"go-payslip/internal/messaging/kafka/consumer"
	"go-payslip/internal/payslip"
	"go-payslip/internal/report"
	"go-payslip/internal/shared/connection"

	"go.uber.org/zap"
)

const reportConsumerGroup = "go-payslip-reports"

// RunConsumer renders requested reports until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	reportService := report.NewService(report.Deps{
		DB:        sqlDB,
		Repo:      report.NewRepository(sqlDB),
		Outbox:    kafka.NewOutboxRepository(sqlDB),
		Payslips:  payslip.NewService(payslip.NewRepository(gormDB)),
		ReportDir: cfg.ReportDir,
		Logger:    logger,
	})

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.SemiAnnualReportRequestedTopic, reportConsumerGroup)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeReportRequested(ctx, reader, reportService, logger)

	sig := waitForShutdown()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()

	return nil
}
