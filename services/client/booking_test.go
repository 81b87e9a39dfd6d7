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

func newBookingTestService(bookings *fakeBookingRepo, services *fakeServiceRepo) (*DefaultClientService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	svc := &DefaultClientService{
		ClientRepo:  newFakeClientRepo(&models.Client{ID: "c1", Email: "c1@test.io"}),
		BookingRepo: bookings,
		ServiceRepo: services,
		ReviewRepo:  newFakeReviewRepo(newFakeOrgRepo()),
		OrgRepo:     newFakeOrgRepo(),
		Notifier:    notifier,
		Logger:      zap.NewNop(),
	}
	return svc, notifier
}

func TestCreateBookingsCartCheckout(t *testing.T) {
	bookings := newFakeBookingRepo()
	services := newFakeServiceRepo(
		&models.Service{ID: "s1", OrganizationID: "o1", BasePrice: 80},
		&models.Service{ID: "s2", OrganizationID: "o2", BasePrice: 120},
	)
	svc, _ := newBookingTestService(bookings, services)

	items := []models.BookingItemInput{
		{ServiceID: "s1", Date: "2026-09-10", TimeSlot: "09:00"},
		{ServiceID: "s2", Date: "2026-09-11", TimeSlot: "14:00", ExtraTasks: []models.ExtraTask{{Description: "balcony", Price: 20}}},
	}
	created, err := svc.CreateBookings(context.Background(), "c1", items)
	require.NoError(t, err)
	require.Len(t, created, 2)

	assert.Equal(t, models.BookingStatusPending, created[0].Status)
	assert.Equal(t, models.PaymentStatusUnpaid, created[0].PaymentStatus)
	assert.Equal(t, 80.0, created[0].TotalPrice)
	assert.Equal(t, "o1", created[0].OrganizationID)
	assert.Equal(t, int64(1), created[0].Version)

	assert.Equal(t, 140.0, created[1].TotalPrice)
	assert.NotEmpty(t, created[1].ExtraTasks[0].ID, "extra tasks get server-side ids")
}

func TestCreateBookingsRejectsBadDate(t *testing.T) {
	svc, _ := newBookingTestService(newFakeBookingRepo(),
		newFakeServiceRepo(&models.Service{ID: "s1", OrganizationID: "o1", BasePrice: 80}))

	items := []models.BookingItemInput{{ServiceID: "s1", Date: "10/09/2026", TimeSlot: "09:00"}}
	_, err := svc.CreateBookings(context.Background(), "c1", items)
	var v utils.ValidationError
	require.True(t, errors.As(err, &v))
	assert.Equal(t, "bookingDate", v.Field)
}

func TestCreateBookingsUnknownService(t *testing.T) {
	svc, _ := newBookingTestService(newFakeBookingRepo(), newFakeServiceRepo())

	items := []models.BookingItemInput{{ServiceID: "ghost", Date: "2026-09-10", TimeSlot: "09:00"}}
	_, err := svc.CreateBookings(context.Background(), "c1", items)
	var nf utils.NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestCreateBookingsRejectsOrphanService(t *testing.T) {
	svc, _ := newBookingTestService(newFakeBookingRepo(),
		newFakeServiceRepo(&models.Service{ID: "s1", BasePrice: 80}))

	items := []models.BookingItemInput{{ServiceID: "s1", Date: "2026-09-10", TimeSlot: "09:00"}}
	_, err := svc.CreateBookings(context.Background(), "c1", items)
	var v utils.ValidationError
	require.True(t, errors.As(err, &v))
}

func TestCreateBookingsEmptyCart(t *testing.T) {
	svc, _ := newBookingTestService(newFakeBookingRepo(), newFakeServiceRepo())

	_, err := svc.CreateBookings(context.Background(), "c1", nil)
	var v utils.ValidationError
	require.True(t, errors.As(err, &v))
}

func TestCancelBookingPending(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID: "b1", ClientID: "c1", Status: models.BookingStatusPending, Version: 1,
	})
	svc, notifier := newBookingTestService(bookings, newFakeServiceRepo())

	cancelled, err := svc.CancelBooking(context.Background(), "c1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Len(t, notifier.emails, 1)
}

func TestCancelBookingReleasesAssignedAgent(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID: "b1", ClientID: "c1", AgentID: "a1", Status: models.BookingStatusAssigned, Version: 1,
	})
	svc, _ := newBookingTestService(bookings, newFakeServiceRepo())

	cancelled, err := svc.CancelBooking(context.Background(), "c1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.True(t, bookings.released["a1"], "cancellation must free the bound agent")
}

func TestCancelBookingOwnership(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID: "b1", ClientID: "c1", Status: models.BookingStatusPending, Version: 1,
	})
	svc, _ := newBookingTestService(bookings, newFakeServiceRepo())

	_, err := svc.CancelBooking(context.Background(), "intruder", "b1")
	var forbidden utils.ForbiddenError
	require.True(t, errors.As(err, &forbidden))
}

func TestCancelBookingRejectsActiveAndCompleted(t *testing.T) {
	for _, status := range []string{models.BookingStatusInProgress, models.BookingStatusCompleted} {
		bookings := newFakeBookingRepo(&models.Booking{
			ID: "b1", ClientID: "c1", Status: status, Version: 1,
		})
		svc, _ := newBookingTestService(bookings, newFakeServiceRepo())

		_, err := svc.CancelBooking(context.Background(), "c1", "b1")
		var bad utils.InvalidStateError
		require.True(t, errors.As(err, &bad), "status %s", status)
	}
}

func TestCancelBookingIdempotentOnCancelled(t *testing.T) {
	bookings := newFakeBookingRepo(&models.Booking{
		ID: "b1", ClientID: "c1", Status: models.BookingStatusCancelled, Version: 1,
	})
	svc, notifier := newBookingTestService(bookings, newFakeServiceRepo())

	cancelled, err := svc.CancelBooking(context.Background(), "c1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Empty(t, notifier.emails, "repeat cancel sends nothing")
}
