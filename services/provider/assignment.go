package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/services/bookingstate"
	"fieldserve/utils"
)

// AssignAgent binds a FREE agent to a PENDING booking. The agent claim,
// the booking update and the organization roster write commit atomically;
// a concurrent claim of the same agent loses with ConflictError.
func (s *DefaultProviderService) AssignAgent(ctx context.Context, orgID, bookingID, agentID string) (*models.AssignmentSummary, error) {
	agent, err := s.AgentRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if agent.OrganizationID != orgID {
		return nil, utils.ForbiddenError{Reason: "agent belongs to another organization"}
	}
	if booking.OrganizationID != orgID {
		return nil, utils.ForbiddenError{Reason: "booking belongs to another organization"}
	}
	if !bookingstate.Assignable(booking.Status) {
		return nil, utils.InvalidTransitionError{From: booking.Status, To: models.BookingStatusAssigned}
	}

	booking.AgentID = agent.ID
	booking.Status = models.BookingStatusAssigned
	if err := s.BookingRepo.AssignAgent(ctx, booking, agent); err != nil {
		return nil, err
	}

	s.notifyAssignment(ctx, orgID, booking, agent)

	s.Logger.Info("agent assigned",
		zap.String("bookingId", booking.ID),
		zap.String("agentId", agent.ID),
		zap.String("organizationId", orgID))

	return &models.AssignmentSummary{
		BookingID:  booking.ID,
		AgentID:    agent.ID,
		AgentName:  agent.Name,
		AgentPhone: agent.Phone,
	}, nil
}

// notifyAssignment sends the post-commit emails and audit entry. Delivery
// is best-effort and never unwinds the committed assignment.
func (s *DefaultProviderService) notifyAssignment(ctx context.Context, orgID string, booking *models.Booking, agent *models.Agent) {
	if agent.Email != "" {
		s.Notifier.Email(agent.Email, "New Job Assigned",
			fmt.Sprintf("You have been assigned booking %s on %s at %s.", booking.ID, booking.Date, booking.TimeSlot))
	}
	if c, err := s.ClientRepo.GetByID(ctx, booking.ClientID); err == nil && c.Email != "" {
		s.Notifier.Email(c.Email, "Agent On The Way",
			fmt.Sprintf("%s (%s) will handle your booking on %s at %s.", agent.Name, agent.Phone, booking.Date, booking.TimeSlot))
	}
	s.Notifier.Audit(models.AuditLog{
		ID:        uuid.New().String(),
		Action:    models.AuditAssignAgent,
		ActorID:   orgID,
		ActorRole: models.RoleProvider,
		TargetID:  booking.ID,
		Metadata:  map[string]string{"agentId": agent.ID},
		CreatedAt: time.Now(),
	})
}
