package clientRepo

import (
	"context"

	"fieldserve/models"
)

// ClientRepository defines persistence for client accounts.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
}
