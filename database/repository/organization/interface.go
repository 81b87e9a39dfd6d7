package orgRepo

import (
	"context"

	"fieldserve/models"
)

// OrganizationRepository defines persistence for organizations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id string) (*models.Organization, error)
	GetByEmail(ctx context.Context, email string) (*models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
	AddAgent(ctx context.Context, orgID, agentID string) error
	RemoveAgent(ctx context.Context, orgID, agentID string) error
	AddService(ctx context.Context, orgID, serviceID string) error
}
