package client

import (
	"math"

	reviewRepo "fieldserve/database/repository/review"
	"fieldserve/models"
)

// AverageRating computes the mean rating over a review set, rounded to one
// decimal place. An empty set averages to zero.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// recomputeRating re-reads the organization's full review set inside the
// current transaction and rewrites the stored aggregate. It returns the
// new mean so callers can surface it.
func recomputeRating(tx reviewRepo.ReviewTx, orgID string) (float64, error) {
	reviews, err := tx.ListByOrganization(orgID)
	if err != nil {
		return 0, err
	}
	mean := AverageRating(reviews)
	if err := tx.SetOrganizationRating(orgID, mean, len(reviews)); err != nil {
		return 0, err
	}
	return mean, nil
}
