// Package tasks builds the asynq task payloads consumed by cron/worker.go.
package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"fieldserve/models"
)

const (
	TypeSendEmail = "email:send"
	TypeAuditLog  = "audit:log"
)

// NewEmailTask packages an outbound notification email.
func NewEmailTask(payload models.EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b, asynq.MaxRetry(3)), nil
}

// NewAuditTask packages an audit trail entry.
func NewAuditTask(entry models.AuditLog) (*asynq.Task, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAuditLog, b, asynq.MaxRetry(5)), nil
}
