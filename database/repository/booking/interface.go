package bookingRepo

import (
	"context"

	"fieldserve/models"
)

// BookingRepository defines persistence for bookings, including the
// multi-entity transactional writes that span booking, agent and
// organization documents.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetForAgent loads a booking only when it is bound to the given agent.
	GetForAgent(ctx context.Context, id, agentID string) (*models.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
	ListByOrganization(ctx context.Context, orgID string) ([]models.Booking, error)
	ListByAgent(ctx context.Context, agentID string) ([]models.Booking, error)

	// UpdateVersioned persists the booking conditioned on booking.Version
	// matching the stored document. On success the stored version is
	// incremented; a lost race returns utils.ConflictError.
	UpdateVersioned(ctx context.Context, booking *models.Booking) error

	// AssignAgent runs the assignment unit of work: claim the agent
	// (FREE -> BUSY, conditional), bind it to the booking (version
	// conditioned), and add the client to the organization roster. The
	// three writes commit or abort together.
	AssignAgent(ctx context.Context, booking *models.Booking, agent *models.Agent) error

	// UpdateVersionedReleasingAgent persists the booking (version
	// conditioned) and releases its agent (BUSY -> FREE) in one
	// transaction. When completed is true the booking id moves onto the
	// agent's completed list.
	UpdateVersionedReleasingAgent(ctx context.Context, booking *models.Booking, agentID string, completed bool) error
}
