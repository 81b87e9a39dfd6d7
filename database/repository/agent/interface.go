package agentRepo

import (
	"context"

	"fieldserve/models"
)

// AgentRepository defines persistence for field agents.
type AgentRepository interface {
	Create(ctx context.Context, agent *models.Agent) error
	GetByID(ctx context.Context, id string) (*models.Agent, error)
	GetByEmail(ctx context.Context, email string) (*models.Agent, error)
	ListByOrganization(ctx context.Context, orgID string) ([]models.Agent, error)
	// ListAvailable returns the organization's agents currently FREE.
	ListAvailable(ctx context.Context, orgID string) ([]models.Agent, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
