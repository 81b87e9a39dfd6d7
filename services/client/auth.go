package client

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

// Register creates a client account. The password is hashed before the
// record ever reaches the repository.
func (s *DefaultClientService) Register(ctx context.Context, name, email, phone, password string) (*models.Client, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, "", utils.ValidationError{Reason: "name and email are required"}
	}
	if !strings.Contains(email, "@") {
		return nil, "", utils.ValidationError{Field: "email", Reason: "not a valid address"}
	}
	if len(password) < 8 {
		return nil, "", utils.ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	c := &models.Client{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(c.ID, models.RoleClient, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	s.Notifier.Email(c.Email, "Welcome", "Your account is ready. Book your first service today.")
	s.Logger.Info("client registered", zap.String("clientId", c.ID))
	return c, token, nil
}

// SignIn authenticates a client by email and password.
func (s *DefaultClientService) SignIn(ctx context.Context, email, password string) (*models.Client, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	c, err := s.ClientRepo.GetByEmail(ctx, email)
	if err != nil {
		var nf utils.NotFoundError
		if errors.As(err, &nf) {
			return nil, "", utils.UnauthorizedError{Reason: "invalid email or password"}
		}
		return nil, "", err
	}
	if !utils.CheckPassword(c.PasswordHash, password) {
		return nil, "", utils.UnauthorizedError{Reason: "invalid email or password"}
	}

	token, err := utils.GenerateToken(c.ID, models.RoleClient, tokenLifetime)
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}
