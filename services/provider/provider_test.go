package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fieldserve/models"
	"fieldserve/services/embedding"
	"fieldserve/utils"
)

func newProviderTestService() (*DefaultProviderService, *fakeAgentRepo, *fakeOrgRepo, *fakeServiceRepo) {
	agents := newFakeAgentRepo()
	orgs := newFakeOrgRepo(&models.Organization{ID: "o1", OwnerID: "o1", Name: "Sparkle Co", Email: "owner@sparkle.test"})
	services := newFakeServiceRepo()
	svc := &DefaultProviderService{
		OrgRepo:     orgs,
		AgentRepo:   agents,
		BookingRepo: newFakeBookingRepo(agents, orgs),
		ClientRepo:  newFakeClientRepo(),
		ServiceRepo: services,
		Embedder:    embedding.Static{Vector: []float32{0.1, 0.2}},
		Notifier:    &fakeNotifier{},
		Logger:      zap.NewNop(),
	}
	return svc, agents, orgs, services
}

func TestCreateAgentLinksRoster(t *testing.T) {
	svc, agents, orgs, _ := newProviderTestService()

	agent, err := svc.CreateAgent(context.Background(), "o1", AgentInput{
		Name: "Ray", Email: "Ray@Org.Test", Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusFree, agent.Status)
	assert.Equal(t, "ray@org.test", agent.Email)
	assert.NotEqual(t, "supersecret", agents.agents[agent.ID].PasswordHash)
	assert.Contains(t, orgs.orgs["o1"].AgentIDs, agent.ID)
}

func TestDeleteBusyAgentRejected(t *testing.T) {
	svc, agents, _, _ := newProviderTestService()
	agents.agents["a1"] = &models.Agent{ID: "a1", OrganizationID: "o1", Status: models.AgentStatusBusy}

	err := svc.DeleteAgent(context.Background(), "o1", "a1")
	var bad utils.InvalidStateError
	require.True(t, errors.As(err, &bad))
}

func TestDeleteForeignAgentReadsAbsent(t *testing.T) {
	svc, agents, _, _ := newProviderTestService()
	agents.agents["a1"] = &models.Agent{ID: "a1", OrganizationID: "other", Status: models.AgentStatusFree}

	err := svc.DeleteAgent(context.Background(), "o1", "a1")
	var nf utils.NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestCreateServiceDerivesEmbedding(t *testing.T) {
	svc, _, orgs, services := newProviderTestService()

	created, err := svc.CreateService(context.Background(), "o1", ServiceInput{
		Name: "Deep Clean", Category: "cleaning", BasePrice: 90,
	})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.Equal(t, []float32{0.1, 0.2}, services.services[created.ID].Embedding)
	assert.Contains(t, orgs.orgs["o1"].ServiceIDs, created.ID)
}

func TestUpdateServiceRefreshesEmbeddingOnTextChange(t *testing.T) {
	svc, _, _, services := newProviderTestService()
	services.services["s1"] = &models.Service{
		ID: "s1", OrganizationID: "o1", Name: "Deep Clean", Category: "cleaning",
		BasePrice: 90, Active: true, Embedding: []float32{9, 9},
	}

	// Price-only change keeps the old vector.
	updated, err := svc.UpdateService(context.Background(), "o1", "s1", ServiceInput{BasePrice: 110})
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 9}, updated.Embedding)
	assert.Equal(t, 110.0, updated.BasePrice)

	// Renaming refreshes it.
	updated, err = svc.UpdateService(context.Background(), "o1", "s1", ServiceInput{Name: "Premium Deep Clean"})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, updated.Embedding)
}

func TestUpdateServiceScopedToOwner(t *testing.T) {
	svc, _, _, services := newProviderTestService()
	services.services["s1"] = &models.Service{ID: "s1", OrganizationID: "other"}

	_, err := svc.UpdateService(context.Background(), "o1", "s1", ServiceInput{Name: "Hijack"})
	var nf utils.NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestProviderRegisterAndSignIn(t *testing.T) {
	svc, _, _, _ := newProviderTestService()
	ctx := context.Background()

	org, token, err := svc.Register(ctx, RegisterInput{
		Name: "Shine Ltd", Email: "ops@shine.test", Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, _, err = svc.Register(ctx, RegisterInput{
		Name: "Copycat", Email: "ops@shine.test", Password: "supersecret",
	})
	var conflict utils.ConflictError
	require.True(t, errors.As(err, &conflict))

	signed, _, err := svc.SignIn(ctx, "ops@shine.test", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, org.ID, signed.ID)

	_, _, err = svc.SignIn(ctx, "ops@shine.test", "wrong")
	var unauth utils.UnauthorizedError
	require.True(t, errors.As(err, &unauth))
}

func TestGetBookingScopedToOrganization(t *testing.T) {
	svc, agents, orgs, _ := newProviderTestService()
	bookings := newFakeBookingRepo(agents, orgs, &models.Booking{
		ID: "b1", OrganizationID: "other", Status: models.BookingStatusPending, Version: 1,
	})
	svc.BookingRepo = bookings

	_, err := svc.GetBooking(context.Background(), "o1", "b1")
	var nf utils.NotFoundError
	require.True(t, errors.As(err, &nf))
}
