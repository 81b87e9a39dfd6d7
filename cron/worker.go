package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"fieldserve/config"
	"fieldserve/models"
	"fieldserve/services/audit"
	"fieldserve/services/notification"
	"fieldserve/services/tasks"
)

// InitWorker runs the async worker in background. It consumes the email
// and audit queues fed by the request path after commit.
func InitWorker(sender notification.Sender, auditStore *audit.Store, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendEmail, handleEmailTask(sender, logger))
	mux.HandleFunc(tasks.TypeAuditLog, handleAuditTask(auditStore, logger))

	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(sender notification.Sender, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid email payload", zap.Error(err))
			return err
		}

		if _, err := sender.Send(ctx, p.To, p.Subject, p.Message); err != nil {
			logger.Warn("email delivery failed",
				zap.String("to", p.To),
				zap.String("subject", p.Subject),
				zap.Error(err))
			return err
		}
		logger.Info("email delivered", zap.String("to", p.To), zap.String("subject", p.Subject))
		return nil
	}
}

func handleAuditTask(store *audit.Store, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var entry models.AuditLog
		if err := json.Unmarshal(task.Payload(), &entry); err != nil {
			logger.Error("invalid audit payload", zap.Error(err))
			return err
		}
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		return store.Record(ctx, entry)
	}
}
