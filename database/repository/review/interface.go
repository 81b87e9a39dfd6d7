package reviewRepo

import (
	"context"

	"fieldserve/models"
)

// ReviewTx exposes the review and organization writes available inside one
// unit of work. Every method sees the transaction's snapshot.
type ReviewTx interface {
	FindByTriple(clientID, orgID, serviceID string) (*models.Review, error)
	// GetForClient loads a review only when it was authored by the client.
	GetForClient(reviewID, clientID string) (*models.Review, error)
	Insert(review *models.Review) error
	Update(review *models.Review) error
	Delete(reviewID string) error
	ListByOrganization(orgID string) ([]models.Review, error)
	// SetOrganizationRating stores the derived aggregate on the
	// organization record.
	SetOrganizationRating(orgID string, rating float64, count int) error
}

// ReviewRepository defines persistence for reviews. All mutating flows run
// through RunInTransaction so the rating aggregate can never be observed
// stale relative to the review set.
type ReviewRepository interface {
	RunInTransaction(ctx context.Context, fn func(tx ReviewTx) error) error
	ListByOrganizationPaged(ctx context.Context, orgID string, page, limit int) (*models.ReviewPage, error)
}
