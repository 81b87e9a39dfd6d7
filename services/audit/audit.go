// Package audit persists the asynchronous audit trail.
package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"fieldserve/database"
	"fieldserve/models"
)

// Store writes audit entries. It is only ever called from the async
// worker, never from a request path.
type Store struct {
	coll *mongo.Collection
}

// NewStore creates an audit store over the audit_logs collection.
func NewStore() *Store {
	return &Store{coll: database.Collection("audit_logs")}
}

// Record inserts one audit entry.
func (s *Store) Record(ctx context.Context, entry models.AuditLog) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if _, err := s.coll.InsertOne(cctx, entry); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}
