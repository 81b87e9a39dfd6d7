package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	reviewRepo "fieldserve/database/repository/review"
	"fieldserve/models"
	"fieldserve/utils"
)

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return utils.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	return nil
}

// CreateReview records one review per (client, organization, service) and
// rewrites the organization's rating aggregate in the same transaction.
func (s *DefaultClientService) CreateReview(ctx context.Context, clientID, orgID, serviceID string, rating int, comment string) (*models.Review, float64, error) {
	if err := validateRating(rating); err != nil {
		return nil, 0, err
	}
	if orgID == "" || serviceID == "" {
		return nil, 0, utils.ValidationError{Reason: "organization and service are required"}
	}

	org, err := s.OrgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.ServiceRepo.GetByID(ctx, serviceID); err != nil {
		return nil, 0, err
	}

	now := time.Now()
	review := &models.Review{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		ClientID:       clientID,
		ServiceID:      serviceID,
		Rating:         rating,
		Comment:        comment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var mean float64
	err = s.ReviewRepo.RunInTransaction(ctx, func(tx reviewRepo.ReviewTx) error {
		existing, err := tx.FindByTriple(clientID, orgID, serviceID)
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.ConflictError{Reason: "client has already reviewed this service"}
		}
		if err := tx.Insert(review); err != nil {
			return err
		}
		mean, err = recomputeRating(tx, orgID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	if org.Email != "" {
		s.Notifier.Email(org.Email, "New Review Received",
			fmt.Sprintf("Your organization received a %d-star review. Current rating: %.1f.", rating, mean))
	}
	s.Notifier.Audit(models.AuditLog{
		ID:        uuid.New().String(),
		Action:    models.AuditReviewCreated,
		ActorID:   clientID,
		ActorRole: models.RoleClient,
		TargetID:  review.ID,
		Metadata:  map[string]string{"organizationId": orgID, "rating": fmt.Sprintf("%d", rating)},
		CreatedAt: time.Now(),
	})
	s.Logger.Info("review created",
		zap.String("reviewId", review.ID),
		zap.String("organizationId", orgID),
		zap.Float64("rating", mean))
	return review, mean, nil
}

// UpdateReview edits a review the caller authored and rewrites the aggregate.
func (s *DefaultClientService) UpdateReview(ctx context.Context, clientID, reviewID string, rating int, comment string) (*models.Review, float64, error) {
	if err := validateRating(rating); err != nil {
		return nil, 0, err
	}

	var (
		review *models.Review
		mean   float64
	)
	err := s.ReviewRepo.RunInTransaction(ctx, func(tx reviewRepo.ReviewTx) error {
		existing, err := tx.GetForClient(reviewID, clientID)
		if err != nil {
			return err
		}
		existing.Rating = rating
		existing.Comment = comment
		existing.UpdatedAt = time.Now()
		if err := tx.Update(existing); err != nil {
			return err
		}
		review = existing
		mean, err = recomputeRating(tx, existing.OrganizationID)
		return err
	})
	if err != nil {
		return nil, 0, err
	}

	s.Notifier.Audit(models.AuditLog{
		ID:        uuid.New().String(),
		Action:    models.AuditReviewUpdated,
		ActorID:   clientID,
		ActorRole: models.RoleClient,
		TargetID:  reviewID,
		CreatedAt: time.Now(),
	})
	return review, mean, nil
}

// DeleteReview removes a review the caller authored and rewrites the
// aggregate over the surviving set.
func (s *DefaultClientService) DeleteReview(ctx context.Context, clientID, reviewID string) (float64, error) {
	var mean float64
	err := s.ReviewRepo.RunInTransaction(ctx, func(tx reviewRepo.ReviewTx) error {
		existing, err := tx.GetForClient(reviewID, clientID)
		if err != nil {
			return err
		}
		if err := tx.Delete(reviewID); err != nil {
			return err
		}
		mean, err = recomputeRating(tx, existing.OrganizationID)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.Notifier.Audit(models.AuditLog{
		ID:        uuid.New().String(),
		Action:    models.AuditReviewDeleted,
		ActorID:   clientID,
		ActorRole: models.RoleClient,
		TargetID:  reviewID,
		CreatedAt: time.Now(),
	})
	return mean, nil
}

// ListOrganizationReviews returns a page of an organization's reviews,
// newest first.
func (s *DefaultClientService) ListOrganizationReviews(ctx context.Context, orgID string, page, limit int) (*models.ReviewPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ReviewRepo.ListByOrganizationPaged(ctx, orgID, page, limit)
}
