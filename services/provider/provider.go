package provider

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/utils"
)

const tokenLifetime = 72 * time.Hour

// Register creates an organization with provider credentials.
func (s *DefaultProviderService) Register(ctx context.Context, input RegisterInput) (*models.Organization, string, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" {
		return nil, "", utils.ValidationError{Reason: "name and email are required"}
	}
	if len(input.Password) < 8 {
		return nil, "", utils.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	if _, err := s.OrgRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, "", utils.ConflictError{Reason: "an organization with this email already exists"}
	} else {
		var nf utils.NotFoundError
		if !errors.As(err, &nf) {
			return nil, "", err
		}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	org := &models.Organization{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Description:  input.Description,
		Address:      input.Address,
		Location:     input.Location,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	org.OwnerID = org.ID
	if err := s.OrgRepo.Create(ctx, org); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(org.ID, models.RoleProvider, tokenLifetime)
	if err != nil {
		return nil, "", err
	}
	s.Logger.Info("organization registered", zap.String("organizationId", org.ID))
	return org, token, nil
}

// SignIn authenticates a provider by organization email and password.
func (s *DefaultProviderService) SignIn(ctx context.Context, email, password string) (*models.Organization, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	org, err := s.OrgRepo.GetByEmail(ctx, email)
	if err != nil {
		var nf utils.NotFoundError
		if errors.As(err, &nf) {
			return nil, "", utils.UnauthorizedError{Reason: "invalid email or password"}
		}
		return nil, "", err
	}
	if !utils.CheckPassword(org.PasswordHash, password) {
		return nil, "", utils.UnauthorizedError{Reason: "invalid email or password"}
	}

	token, err := utils.GenerateToken(org.ID, models.RoleProvider, tokenLifetime)
	if err != nil {
		return nil, "", err
	}
	return org, token, nil
}

func (s *DefaultProviderService) GetProfile(ctx context.Context, orgID string) (*models.Organization, error) {
	return s.OrgRepo.GetByID(ctx, orgID)
}

func (s *DefaultProviderService) UpdateProfile(ctx context.Context, orgID string, input ProfileInput) (*models.Organization, error) {
	org, err := s.OrgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		org.Name = input.Name
	}
	if input.Description != "" {
		org.Description = input.Description
	}
	if input.Phone != "" {
		org.Phone = input.Phone
	}
	if input.Address != "" {
		org.Address = input.Address
	}
	if input.Website != "" {
		org.Website = input.Website
	}
	if input.Logo != "" {
		org.Logo = input.Logo
	}
	if input.Location.Valid() {
		org.Location = input.Location
	}
	if input.Categories != nil {
		org.Categories = input.Categories
	}
	if err := s.OrgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *DefaultProviderService) ListBookings(ctx context.Context, orgID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByOrganization(ctx, orgID)
}

// GetBooking loads one booking scoped to the organization. A booking owned
// elsewhere is reported as absent, not forbidden, so existence never leaks.
func (s *DefaultProviderService) GetBooking(ctx context.Context, orgID, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OrganizationID != orgID {
		return nil, utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	return booking, nil
}

func (s *DefaultProviderService) ListAgents(ctx context.Context, orgID string) ([]models.Agent, error) {
	return s.AgentRepo.ListByOrganization(ctx, orgID)
}

func (s *DefaultProviderService) ListAvailableAgents(ctx context.Context, orgID string) ([]models.Agent, error) {
	return s.AgentRepo.ListAvailable(ctx, orgID)
}

// CreateAgent provisions a field agent under the organization and links it
// into the organization roster.
func (s *DefaultProviderService) CreateAgent(ctx context.Context, orgID string, input AgentInput) (*models.Agent, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" {
		return nil, utils.ValidationError{Reason: "name and email are required"}
	}
	if len(input.Password) < 8 {
		return nil, utils.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	agent := &models.Agent{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		PasswordHash:   hash,
		Status:         models.AgentStatusFree,
		Services:       input.Services,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.AgentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}
	if err := s.OrgRepo.AddAgent(ctx, orgID, agent.ID); err != nil {
		s.Logger.Error("agent created but roster link failed",
			zap.String("agentId", agent.ID), zap.Error(err))
	}

	s.Notifier.Email(agent.Email, "Welcome Aboard",
		"Your field agent account is ready. Sign in to see your assignments.")
	return agent, nil
}

// DeleteAgent removes a FREE agent from the organization.
func (s *DefaultProviderService) DeleteAgent(ctx context.Context, orgID, agentID string) error {
	agent, err := s.AgentRepo.GetByID(ctx, agentID)
	if err != nil {
		return err
	}
	if agent.OrganizationID != orgID {
		return utils.NotFoundError{Resource: "agent", ID: agentID}
	}
	if agent.Status == models.AgentStatusBusy {
		return utils.InvalidStateError{Reason: "agent has an active booking"}
	}
	if err := s.AgentRepo.Delete(ctx, agentID); err != nil {
		return err
	}
	return s.OrgRepo.RemoveAgent(ctx, orgID, agentID)
}
