package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/services/bookingstate"
)

// Dashboard buckets the agent's bookings by lifecycle stage. ASSIGNED
// bookings count as pending work.
func (s *DefaultAgentService) Dashboard(ctx context.Context, agentID string) (*models.AgentDashboard, error) {
	bookings, err := s.BookingRepo.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent bookings: %w", err)
	}

	dash := &models.AgentDashboard{}
	dash.Stats.Total = len(bookings)
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusPending, models.BookingStatusAssigned:
			dash.Pending = append(dash.Pending, b)
		case models.BookingStatusInProgress:
			dash.InProgress = append(dash.InProgress, b)
		case models.BookingStatusCompleted:
			dash.Completed = append(dash.Completed, b)
		}
	}
	dash.Stats.Pending = len(dash.Pending)
	dash.Stats.InProgress = len(dash.InProgress)
	dash.Stats.Completed = len(dash.Completed)
	return dash, nil
}

// GetBooking loads one booking scoped to the calling agent.
func (s *DefaultAgentService) GetBooking(ctx context.Context, agentID, bookingID string) (*models.Booking, error) {
	return s.BookingRepo.GetForAgent(ctx, bookingID, agentID)
}

// UpdateStatus applies one transition from the lifecycle table. Reaching
// COMPLETED (or CANCELLED) releases the agent within the same unit of
// work.
func (s *DefaultAgentService) UpdateStatus(ctx context.Context, agentID, bookingID, next string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetForAgent(ctx, bookingID, agentID)
	if err != nil {
		return nil, err
	}

	if err := bookingstate.Transition(booking.Status, next); err != nil {
		return nil, err
	}

	prev := booking.Status
	booking.Status = next

	switch next {
	case models.BookingStatusCompleted:
		err = s.BookingRepo.UpdateVersionedReleasingAgent(ctx, booking, agentID, true)
	case models.BookingStatusCancelled:
		err = s.BookingRepo.UpdateVersionedReleasingAgent(ctx, booking, agentID, false)
	default:
		err = s.BookingRepo.UpdateVersioned(ctx, booking)
	}
	if err != nil {
		return nil, err
	}

	s.Logger.Info("booking status updated",
		zap.String("bookingId", booking.ID),
		zap.String("from", prev),
		zap.String("to", next))
	s.Notifier.Audit(models.AuditLog{
		Action:    models.AuditStatusChange,
		ActorID:   agentID,
		ActorRole: models.RoleAgent,
		TargetID:  booking.ID,
		Metadata:  map[string]string{"from": prev, "to": next},
	})
	return booking, nil
}
