// Package provider implements the organization-side facade: agent
// assignment, roster management and the service catalog.
package provider

import (
	"context"

	"go.uber.org/zap"

	agentRepo "fieldserve/database/repository/agent"
	bookingRepo "fieldserve/database/repository/booking"
	clientRepo "fieldserve/database/repository/client"
	orgRepo "fieldserve/database/repository/organization"
	serviceRepo "fieldserve/database/repository/service"
	"fieldserve/models"
	"fieldserve/services/embedding"
	"fieldserve/services/notification"
)

// ProviderService is the facade for provider-initiated operations. The
// caller identity (orgID) comes from the auth token and is checked against
// every loaded aggregate.
type ProviderService interface {
	Register(ctx context.Context, input RegisterInput) (*models.Organization, string, error)
	SignIn(ctx context.Context, email, password string) (*models.Organization, string, error)
	GetProfile(ctx context.Context, orgID string) (*models.Organization, error)
	UpdateProfile(ctx context.Context, orgID string, input ProfileInput) (*models.Organization, error)

	AssignAgent(ctx context.Context, orgID, bookingID, agentID string) (*models.AssignmentSummary, error)
	ListBookings(ctx context.Context, orgID string) ([]models.Booking, error)
	GetBooking(ctx context.Context, orgID, bookingID string) (*models.Booking, error)

	ListAgents(ctx context.Context, orgID string) ([]models.Agent, error)
	ListAvailableAgents(ctx context.Context, orgID string) ([]models.Agent, error)
	CreateAgent(ctx context.Context, orgID string, input AgentInput) (*models.Agent, error)
	DeleteAgent(ctx context.Context, orgID, agentID string) error

	ListServices(ctx context.Context, orgID string) ([]models.Service, error)
	CreateService(ctx context.Context, orgID string, input ServiceInput) (*models.Service, error)
	UpdateService(ctx context.Context, orgID, serviceID string, input ServiceInput) (*models.Service, error)
	DeleteService(ctx context.Context, orgID, serviceID string) error
}

// RegisterInput carries a provider registration request.
type RegisterInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	Phone       string          `json:"phone"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Location    models.GeoPoint `json:"location"`
}

// ProfileInput carries an organization profile update.
type ProfileInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Website     string          `json:"website"`
	Logo        string          `json:"logo"`
	Location    models.GeoPoint `json:"location"`
	Categories  []string        `json:"categories"`
}

// AgentInput carries an agent creation request.
type AgentInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Password string   `json:"password"`
	Services []string `json:"services"`
}

// ServiceInput carries a service create or update request.
type ServiceInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   float64         `json:"basePrice"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	Images      []string        `json:"images"`
	Location    models.GeoPoint `json:"location"`
	Active      *bool           `json:"active"`
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	OrgRepo     orgRepo.OrganizationRepository
	AgentRepo   agentRepo.AgentRepository
	BookingRepo bookingRepo.BookingRepository
	ClientRepo  clientRepo.ClientRepository
	ServiceRepo serviceRepo.ServiceRepository
	Embedder    embedding.Provider
	Notifier    notification.Notifier
	Logger      *zap.Logger
}
