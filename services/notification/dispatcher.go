package notification

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/services/tasks"
)

// enqueueTimeout bounds how long a dispatch may hold up a request. The
// queue broker being slow must not stretch the caller's critical path.
const enqueueTimeout = 2 * time.Second

// Dispatcher enqueues notification and audit work after a unit of work has
// committed. Enqueue failures are logged and dropped.
type Dispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewDispatcher wraps an asynq client.
func NewDispatcher(client *asynq.Client, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{client: client, logger: logger}
}

// Email enqueues a best-effort notification email.
func (d *Dispatcher) Email(to, subject, message string) {
	task, err := tasks.NewEmailTask(models.EmailPayload{To: to, Subject: subject, Message: message})
	if err != nil {
		d.logger.Error("failed to build email task", zap.Error(err))
		return
	}
	d.enqueue(task, "email", to)
}

// Audit enqueues an audit trail entry.
func (d *Dispatcher) Audit(entry models.AuditLog) {
	entry.CreatedAt = time.Now()
	task, err := tasks.NewAuditTask(entry)
	if err != nil {
		d.logger.Error("failed to build audit task", zap.Error(err))
		return
	}
	d.enqueue(task, "audit", entry.Action)
}

func (d *Dispatcher) enqueue(task *asynq.Task, kind, target string) {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()

	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		d.logger.Warn("failed to enqueue task",
			zap.String("kind", kind),
			zap.String("target", target),
			zap.Error(err))
	}
}
