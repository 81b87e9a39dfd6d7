package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/utils"
)

func newReviewTestService() (*DefaultClientService, *fakeOrgRepo, *fakeReviewRepo, *fakeNotifier) {
	orgs := newFakeOrgRepo(&models.Organization{ID: "o1", Name: "Sparkle Co", Email: "owner@sparkle.test"})
	reviews := newFakeReviewRepo(orgs)
	services := newFakeServiceRepo(&models.Service{ID: "s1", OrganizationID: "o1", BasePrice: 100})
	notifier := &fakeNotifier{}
	svc := &DefaultClientService{
		ClientRepo:  newFakeClientRepo(),
		BookingRepo: newFakeBookingRepo(),
		ServiceRepo: services,
		ReviewRepo:  reviews,
		OrgRepo:     orgs,
		Notifier:    notifier,
		Logger:      zap.NewNop(),
	}
	return svc, orgs, reviews, notifier
}

func TestCreateReviewUpdatesAggregate(t *testing.T) {
	svc, orgs, _, notifier := newReviewTestService()
	ctx := context.Background()

	_, mean, err := svc.CreateReview(ctx, "c1", "o1", "s1", 5, "great")
	require.NoError(t, err)
	assert.Equal(t, 5.0, mean)

	_, mean, err = svc.CreateReview(ctx, "c2", "o1", "s1", 4, "good")
	require.NoError(t, err)
	assert.Equal(t, 4.5, mean)

	_, mean, err = svc.CreateReview(ctx, "c3", "o1", "s1", 3, "ok")
	require.NoError(t, err)
	assert.Equal(t, 4.0, mean)

	org, _ := orgs.GetByID(ctx, "o1")
	assert.Equal(t, 4.0, org.Rating)
	assert.Equal(t, 3, org.ReviewCount)
	assert.Len(t, notifier.emails, 3)
}

func TestCreateReviewDuplicateTriple(t *testing.T) {
	svc, orgs, _, _ := newReviewTestService()
	ctx := context.Background()

	_, _, err := svc.CreateReview(ctx, "c1", "o1", "s1", 5, "")
	require.NoError(t, err)

	_, _, err = svc.CreateReview(ctx, "c1", "o1", "s1", 1, "changed my mind")
	var conflict utils.ConflictError
	require.True(t, errors.As(err, &conflict))

	// The failed write must not disturb the aggregate.
	org, _ := orgs.GetByID(ctx, "o1")
	assert.Equal(t, 5.0, org.Rating)
	assert.Equal(t, 1, org.ReviewCount)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc, _, _, _ := newReviewTestService()

	for _, rating := range []int{0, 6, -1} {
		_, _, err := svc.CreateReview(context.Background(), "c1", "o1", "s1", rating, "")
		var v utils.ValidationError
		require.True(t, errors.As(err, &v), "rating %d", rating)
	}
}

func TestUpdateReviewRecomputesAggregate(t *testing.T) {
	svc, orgs, _, _ := newReviewTestService()
	ctx := context.Background()

	created, _, err := svc.CreateReview(ctx, "c1", "o1", "s1", 2, "")
	require.NoError(t, err)
	_, _, err = svc.CreateReview(ctx, "c2", "o1", "s1", 4, "")
	require.NoError(t, err)

	_, mean, err := svc.UpdateReview(ctx, "c1", created.ID, 5, "much better")
	require.NoError(t, err)
	assert.Equal(t, 4.5, mean)

	org, _ := orgs.GetByID(ctx, "o1")
	assert.Equal(t, 4.5, org.Rating)
}

func TestUpdateReviewScopedToAuthor(t *testing.T) {
	svc, _, _, _ := newReviewTestService()
	ctx := context.Background()

	created, _, err := svc.CreateReview(ctx, "c1", "o1", "s1", 4, "")
	require.NoError(t, err)

	_, _, err = svc.UpdateReview(ctx, "someone-else", created.ID, 1, "")
	var nf utils.NotFoundError
	require.True(t, errors.As(err, &nf), "foreign reviews read as absent")
}

func TestDeleteReviewRecomputesAggregate(t *testing.T) {
	svc, orgs, _, _ := newReviewTestService()
	ctx := context.Background()

	first, _, err := svc.CreateReview(ctx, "c1", "o1", "s1", 3, "")
	require.NoError(t, err)
	_, _, err = svc.CreateReview(ctx, "c2", "o1", "s1", 5, "")
	require.NoError(t, err)
	_, _, err = svc.CreateReview(ctx, "c3", "o1", "s1", 4, "")
	require.NoError(t, err)

	mean, err := svc.DeleteReview(ctx, "c1", first.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, mean)

	org, _ := orgs.GetByID(ctx, "o1")
	assert.Equal(t, 4.5, org.Rating)
	assert.Equal(t, 2, org.ReviewCount)
}

func TestDeleteLastReviewZeroesAggregate(t *testing.T) {
	svc, orgs, _, _ := newReviewTestService()
	ctx := context.Background()

	created, _, err := svc.CreateReview(ctx, "c1", "o1", "s1", 5, "")
	require.NoError(t, err)

	mean, err := svc.DeleteReview(ctx, "c1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mean)

	org, _ := orgs.GetByID(ctx, "o1")
	assert.Equal(t, 0.0, org.Rating)
	assert.Equal(t, 0, org.ReviewCount)
}

func TestListOrganizationReviewsPagination(t *testing.T) {
	svc, _, _, _ := newReviewTestService()
	ctx := context.Background()

	for i, cid := range []string{"c1", "c2", "c3", "c4", "c5"} {
		_, _, err := svc.CreateReview(ctx, cid, "o1", "s1", (i%5)+1, "")
		require.NoError(t, err)
	}

	page, err := svc.ListOrganizationReviews(ctx, "o1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Reviews, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last, err := svc.ListOrganizationReviews(ctx, "o1", 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Reviews, 1)
}
