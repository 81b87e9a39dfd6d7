package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/services/pricing"
	"fieldserve/utils"
)

// CreateBookings performs a cart checkout: one PENDING booking per item.
// Each item's service must exist and carry a valid organization link.
func (s *DefaultClientService) CreateBookings(ctx context.Context, clientID string, items []models.BookingItemInput) ([]models.Booking, error) {
	if len(items) == 0 {
		return nil, utils.ValidationError{Reason: "at least one service is required"}
	}

	created := make([]models.Booking, 0, len(items))
	for _, item := range items {
		if item.ServiceID == "" || item.Date == "" || item.TimeSlot == "" {
			return nil, utils.ValidationError{Reason: "service id, date and time are required"}
		}
		if _, err := time.Parse("2006-01-02", item.Date); err != nil {
			return nil, utils.ValidationError{Field: "bookingDate", Reason: "expected YYYY-MM-DD, got " + item.Date}
		}

		svc, err := s.ServiceRepo.GetByID(ctx, item.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc.OrganizationID == "" {
			return nil, utils.ValidationError{
				Field:  "serviceId",
				Reason: fmt.Sprintf("service %q is not linked to an organization", svc.Name),
			}
		}

		tasks := make([]models.ExtraTask, 0, len(item.ExtraTasks))
		for _, t := range item.ExtraTasks {
			if t.Price < 0 {
				return nil, utils.ValidationError{Field: "extraTasks", Reason: "price must not be negative"}
			}
			tasks = append(tasks, models.ExtraTask{
				ID:          uuid.New().String(),
				Description: t.Description,
				Price:       t.Price,
			})
		}

		now := time.Now()
		booking := models.Booking{
			ID:             uuid.New().String(),
			ClientID:       clientID,
			OrganizationID: svc.OrganizationID,
			ServiceID:      svc.ID,
			Date:           item.Date,
			TimeSlot:       item.TimeSlot,
			Status:         models.BookingStatusPending,
			TotalPrice:     pricing.ComputeTotal(svc.BasePrice, tasks),
			PaymentStatus:  models.PaymentStatusUnpaid,
			ExtraTasks:     tasks,
			Location:       item.Location,
			Address:        item.Address,
			Version:        1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.BookingRepo.Create(ctx, &booking); err != nil {
			return nil, err
		}
		created = append(created, booking)
	}

	s.Logger.Info("checkout complete",
		zap.String("clientId", clientID),
		zap.Int("bookings", len(created)))
	return created, nil
}

// ListBookings returns the client's bookings, newest first.
func (s *DefaultClientService) ListBookings(ctx context.Context, clientID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByClient(ctx, clientID)
}

// CancelBooking moves a booking the caller owns to CANCELLED. Bookings
// already in progress or completed cannot be cancelled. A bound agent is
// released in the same unit of work.
func (s *DefaultClientService) CancelBooking(ctx context.Context, clientID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ClientID != clientID {
		return nil, utils.ForbiddenError{Reason: "booking belongs to another client"}
	}
	if booking.Status == models.BookingStatusCompleted || booking.Status == models.BookingStatusInProgress {
		return nil, utils.InvalidStateError{Reason: "cannot cancel an active or completed booking"}
	}
	if booking.Status == models.BookingStatusCancelled {
		return booking, nil
	}

	booking.Status = models.BookingStatusCancelled
	if booking.AgentID != "" {
		err = s.BookingRepo.UpdateVersionedReleasingAgent(ctx, booking, booking.AgentID, false)
	} else {
		err = s.BookingRepo.UpdateVersioned(ctx, booking)
	}
	if err != nil {
		return nil, err
	}

	if c, err := s.ClientRepo.GetByID(ctx, clientID); err == nil && c.Email != "" {
		s.Notifier.Email(c.Email, "Booking Cancelled",
			fmt.Sprintf("Booking %s has been cancelled.", bookingID))
	}
	return booking, nil
}
