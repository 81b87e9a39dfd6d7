package agent

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldserve/models"
	"fieldserve/utils"
)

const tokenLifetime = 72 * time.Hour

// SignIn authenticates a field agent by email and password.
func (s *DefaultAgentService) SignIn(ctx context.Context, email, password string) (*models.Agent, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	a, err := s.AgentRepo.GetByEmail(ctx, email)
	if err != nil {
		var nf utils.NotFoundError
		if errors.As(err, &nf) {
			return nil, "", utils.UnauthorizedError{Reason: "invalid email or password"}
		}
		return nil, "", err
	}
	if !utils.CheckPassword(a.PasswordHash, password) {
		return nil, "", utils.UnauthorizedError{Reason: "invalid email or password"}
	}

	token, err := utils.GenerateToken(a.ID, models.RoleAgent, tokenLifetime)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// SetAvailability toggles an agent between FREE and OFFLINE. BUSY is owned
// by the assignment flow and cannot be entered or left here.
func (s *DefaultAgentService) SetAvailability(ctx context.Context, agentID, status string) error {
	if status != models.AgentStatusFree && status != models.AgentStatusOffline {
		return utils.ValidationError{Field: "status", Reason: "must be FREE or OFFLINE"}
	}
	a, err := s.AgentRepo.GetByID(ctx, agentID)
	if err != nil {
		return err
	}
	if a.Status == models.AgentStatusBusy {
		return utils.InvalidStateError{Reason: "agent has an active booking"}
	}
	return s.AgentRepo.SetStatus(ctx, agentID, status)
}
