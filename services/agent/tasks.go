package agent

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fieldserve/models"
	"fieldserve/services/pricing"
	"fieldserve/utils"
)

// loadMutable fetches the booking scoped to the agent and refuses terminal
// states.
func (s *DefaultAgentService) loadMutable(ctx context.Context, agentID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetForAgent(ctx, bookingID, agentID)
	if err != nil {
		return nil, err
	}
	if booking.Terminal() {
		return nil, utils.InvalidStateError{Reason: "cannot modify a " + strings.ToLower(booking.Status) + " booking"}
	}
	return booking, nil
}

// reprice recomputes the total from the service's current base price and
// demotes a paid booking back to unpaid. The stored total is never
// trusted: the base price is always re-fetched.
func (s *DefaultAgentService) reprice(ctx context.Context, booking *models.Booking) error {
	svc, err := s.ServiceRepo.GetByID(ctx, booking.ServiceID)
	if err != nil {
		return err
	}
	booking.TotalPrice = pricing.ComputeTotal(svc.BasePrice, booking.ExtraTasks)
	if booking.PaymentStatus == models.PaymentStatusPaid {
		booking.PaymentStatus = models.PaymentStatusUnpaid
	}
	return nil
}

func validateTask(description string, price float64) error {
	if strings.TrimSpace(description) == "" {
		return utils.ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if price < 0 {
		return utils.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// AddExtraTask appends a priced line item and reconciles the total.
func (s *DefaultAgentService) AddExtraTask(ctx context.Context, agentID, bookingID string, description string, price float64) (*models.Booking, error) {
	if err := validateTask(description, price); err != nil {
		return nil, err
	}
	booking, err := s.loadMutable(ctx, agentID, bookingID)
	if err != nil {
		return nil, err
	}

	booking.ExtraTasks = append(booking.ExtraTasks, models.ExtraTask{
		ID:          uuid.New().String(),
		Description: description,
		Price:       price,
	})
	if err := s.reprice(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.BookingRepo.UpdateVersioned(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateExtraTask edits an existing line item and reconciles the total.
func (s *DefaultAgentService) UpdateExtraTask(ctx context.Context, agentID, bookingID, taskID string, description string, price float64) (*models.Booking, error) {
	if err := validateTask(description, price); err != nil {
		return nil, err
	}
	booking, err := s.loadMutable(ctx, agentID, bookingID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range booking.ExtraTasks {
		if booking.ExtraTasks[i].ID == taskID {
			booking.ExtraTasks[i].Description = description
			booking.ExtraTasks[i].Price = price
			found = true
			break
		}
	}
	if !found {
		return nil, utils.NotFoundError{Resource: "extra task", ID: taskID}
	}

	if err := s.reprice(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.BookingRepo.UpdateVersioned(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// DeleteExtraTask removes a line item and reconciles the total.
func (s *DefaultAgentService) DeleteExtraTask(ctx context.Context, agentID, bookingID, taskID string) (*models.Booking, error) {
	booking, err := s.loadMutable(ctx, agentID, bookingID)
	if err != nil {
		return nil, err
	}

	kept := booking.ExtraTasks[:0]
	found := false
	for _, t := range booking.ExtraTasks {
		if t.ID == taskID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return nil, utils.NotFoundError{Resource: "extra task", ID: taskID}
	}
	booking.ExtraTasks = kept

	if err := s.reprice(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.BookingRepo.UpdateVersioned(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
