package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-payslip/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type ReportGenerator interface {
	Generate(ctx context.Context, event events.SemiAnnualReportRequestedEvent) error
}

// Backoff between attempts at one report. It doubles per attempt up to
// MaxRetryBackoff.
var (
	RetryBackoff    = 500 * time.Millisecond
	MaxRetryBackoff = 30 * time.Second
)

// ConsumeReportRequested renders each requested report. Undecodable messages are
// committed and skipped. A message whose generation fails is retried until it
// succeeds or ctx ends, so no later offset is committed past it.
func ConsumeReportRequested(
	ctx context.Context,
	reader MessageReader,
	generator ReportGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.report_requested")
	log.Info("report consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("report consumer stopped")
				return
			}
			log.Error("fetch report message failed", zap.Error(err))
			continue
		}

		var event events.SemiAnnualReportRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode report requested event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !generateWithRetry(ctx, generator, event, log) {
			log.Info("report consumer stopped")
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit report message failed", zap.Error(err))
			continue
		}

		log.Info("report generated",
			zap.String("report_id", event.ReportID),
			zap.String("owner_id", event.OwnerID),
			zap.String("request_id", event.RequestID),
		)
	}
}

// generateWithRetry reports false when ctx ended before generation succeeded.
func generateWithRetry(
	ctx context.Context,
	generator ReportGenerator,
	event events.SemiAnnualReportRequestedEvent,
	log *zap.Logger,
) bool {
	backoff := RetryBackoff
	for attempt := 1; ; attempt++ {
		err := generator.Generate(ctx, event)
		if err == nil {
			return true
		}
		if ctx.Err() != nil {
			return false
		}
		log.Error("generate report failed",
			zap.String("report_id", event.ReportID),
			zap.String("owner_id", event.OwnerID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", backoff),
			zap.Error(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
		backoff = min(backoff*2, MaxRetryBackoff)
	}
}
