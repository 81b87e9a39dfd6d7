package notification

import (
	"context"

	"fieldserve/models"
)

// Notifier is the post-commit side-effect surface the domain services
// depend on. Both calls are fire-and-forget.
type Notifier interface {
	Email(to, subject, message string)
	Audit(entry models.AuditLog)
}

// Sender delivers one notification to one recipient. Implementations are
// best-effort: callers log failures and continue, they never roll back
// committed state because a notification failed.
type Sender interface {
	Send(ctx context.Context, to, subject, message string) (bool, error)
}
