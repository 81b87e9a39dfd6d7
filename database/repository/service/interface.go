package serviceRepo

import (
	"context"

	"fieldserve/models"
)

// ServiceRepository defines persistence for sellable services, including
// the ranked candidate-search pipeline.
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByOrganization(ctx context.Context, orgID string) ([]models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error

	// Search executes the composed filter+rank stages in fixed order:
	// semantic (when vector is non-empty) -> geo -> category. The caller
	// paginates the returned ranked set.
	Search(ctx context.Context, query models.SearchQuery, vector []float32) ([]models.SearchResultItem, error)

	// DistinctCategories projects the deduplicated categories of active
	// services.
	DistinctCategories(ctx context.Context) ([]string, error)
}
