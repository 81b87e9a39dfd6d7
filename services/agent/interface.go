package agent

import (
	"context"

	"go.uber.org/zap"

	agentRepo "fieldserve/database/repository/agent"
	bookingRepo "fieldserve/database/repository/booking"
	serviceRepo "fieldserve/database/repository/service"
	"fieldserve/models"
	"fieldserve/services/notification"
)

// AgentService is the facade for everything a field agent may do to the
// bookings bound to them.
type AgentService interface {
	SignIn(ctx context.Context, email, password string) (*models.Agent, string, error)
	SetAvailability(ctx context.Context, agentID, status string) error
	Dashboard(ctx context.Context, agentID string) (*models.AgentDashboard, error)
	GetBooking(ctx context.Context, agentID, bookingID string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, agentID, bookingID, next string) (*models.Booking, error)
	AddExtraTask(ctx context.Context, agentID, bookingID string, description string, price float64) (*models.Booking, error)
	UpdateExtraTask(ctx context.Context, agentID, bookingID, taskID string, description string, price float64) (*models.Booking, error)
	DeleteExtraTask(ctx context.Context, agentID, bookingID, taskID string) (*models.Booking, error)
	ProcessPayment(ctx context.Context, agentID, bookingID string) (*models.Booking, error)
}

// DefaultAgentService implements AgentService.
type DefaultAgentService struct {
	AgentRepo   agentRepo.AgentRepository
	BookingRepo bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	Notifier    notification.Notifier
	Logger      *zap.Logger
}
