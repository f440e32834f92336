package bootstrap

import (
	"context"
	"time"

	"go-payslip/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("audit"), now: time.Now}
}

func NewAuditLogger(logger *zap.Logger) *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: logger.Named("audit"), now: time.Now}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	actor := entry.ActorID
	if actor == "" {
		actor = contextutil.OwnerID(ctx)
	}

	l.logger.Info("audit event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("actor_id", actor),
		zap.String("request_id", contextutil.RequestID(ctx)),
		zap.Any("meta", entry.Meta),
	)
}
