package models

import "time"

// Audit actions recorded by the async audit trail.
const (
	AuditAssignAgent   = "ASSIGN_AGENT"
	AuditStatusChange  = "BOOKING_STATUS_CHANGE"
	AuditMarkPaid      = "MARK_BOOKING_PAID"
	AuditReviewCreated = "REVIEW_CREATED"
	AuditReviewUpdated = "REVIEW_UPDATED"
	AuditReviewDeleted = "REVIEW_DELETED"
)

// AuditLog is one persisted audit trail entry.
type AuditLog struct {
	ID        string            `bson:"id" json:"id"`
	Action    string            `bson:"action" json:"action"`
	ActorID   string            `bson:"actorId" json:"actorId"`
	ActorRole string            `bson:"actorRole" json:"actorRole"`
	TargetID  string            `bson:"targetId,omitempty" json:"targetId,omitempty"`
	Metadata  map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}

// EmailPayload is the asynq task payload for an outbound email.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
