package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	ActorID string
	Meta    map[string]any
}

// AuditLogger records security and data-lifecycle events (shutdown, import, clear).
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
