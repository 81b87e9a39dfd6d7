package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/services/pricing"
	"fieldserve/utils"
)

// ProcessPayment settles the booking: the total is re-derived from the
// service's current base price plus the extras on record, then the
// booking moves to PAID and COMPLETED and the agent is released. Safe to
// repeat; a second call re-verifies the same total.
func (s *DefaultAgentService) ProcessPayment(ctx context.Context, agentID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetForAgent(ctx, bookingID, agentID)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil, utils.InvalidStateError{Reason: "cannot settle a cancelled booking"}
	}

	svc, err := s.ServiceRepo.GetByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, err
	}

	booking.TotalPrice = pricing.ComputeTotal(svc.BasePrice, booking.ExtraTasks)
	booking.PaymentStatus = models.PaymentStatusPaid
	booking.Status = models.BookingStatusCompleted

	if err := s.BookingRepo.UpdateVersionedReleasingAgent(ctx, booking, agentID, true); err != nil {
		return nil, err
	}

	s.Logger.Info("booking settled",
		zap.String("bookingId", booking.ID),
		zap.Float64("total", booking.TotalPrice))
	s.Notifier.Audit(models.AuditLog{
		Action:    models.AuditMarkPaid,
		ActorID:   agentID,
		ActorRole: models.RoleAgent,
		TargetID:  booking.ID,
		Metadata:  map[string]string{"finalPrice": fmt.Sprintf("%.2f", booking.TotalPrice)},
	})
	return booking, nil
}
