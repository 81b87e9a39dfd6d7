package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldserve/models"
)

func TestAverageRatingEmptySet(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
}

func TestAverageRatingSingle(t *testing.T) {
	assert.Equal(t, 5.0, AverageRating([]models.Review{{Rating: 5}}))
}

func TestAverageRatingRoundsToOneDecimal(t *testing.T) {
	// (5 + 4 + 3) / 3 = 4.0
	reviews := []models.Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}
	assert.Equal(t, 4.0, AverageRating(reviews))

	// (5 + 4) / 2 = 4.5
	assert.Equal(t, 4.5, AverageRating(reviews[:2]))

	// (5 + 3 + 3) / 3 = 3.666... -> 3.7
	reviews = []models.Review{{Rating: 5}, {Rating: 3}, {Rating: 3}}
	assert.Equal(t, 3.7, AverageRating(reviews))
}
