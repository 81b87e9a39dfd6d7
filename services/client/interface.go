package client

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "fieldserve/database/repository/booking"
	clientRepo "fieldserve/database/repository/client"
	orgRepo "fieldserve/database/repository/organization"
	reviewRepo "fieldserve/database/repository/review"
	serviceRepo "fieldserve/database/repository/service"
	"fieldserve/models"
	"fieldserve/services/notification"
)

// ClientService is the facade for client-initiated operations: checkout,
// cancellation, reviews and account management.
type ClientService interface {
	Register(ctx context.Context, name, email, phone, password string) (*models.Client, string, error)
	SignIn(ctx context.Context, email, password string) (*models.Client, string, error)

	CreateBookings(ctx context.Context, clientID string, items []models.BookingItemInput) ([]models.Booking, error)
	ListBookings(ctx context.Context, clientID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, clientID, bookingID string) (*models.Booking, error)

	CreateReview(ctx context.Context, clientID, orgID, serviceID string, rating int, comment string) (*models.Review, float64, error)
	UpdateReview(ctx context.Context, clientID, reviewID string, rating int, comment string) (*models.Review, float64, error)
	DeleteReview(ctx context.Context, clientID, reviewID string) (float64, error)
	ListOrganizationReviews(ctx context.Context, orgID string, page, limit int) (*models.ReviewPage, error)
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	ClientRepo  clientRepo.ClientRepository
	BookingRepo bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	ReviewRepo  reviewRepo.ReviewRepository
	OrgRepo     orgRepo.OrganizationRepository
	Notifier    notification.Notifier
	Logger      *zap.Logger
}
