package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	agentsvc "fieldserve/services/agent"
	clientsvc "fieldserve/services/client"
	"fieldserve/services/embedding"

	"fieldserve/models"
)

// The full booking lifecycle crosses all three facades against one shared
// store: the client checks out, the provider assigns, the agent works the
// job and settles it. Each hand-off must observe the writes of the
// previous one.
func TestBookingLifecycleAcrossRoles(t *testing.T) {
	agents := newFakeAgentRepo(&models.Agent{
		ID: "a1", OrganizationID: "o1", Name: "Ray", Email: "ray@org.test",
		Phone: "555-0101", Status: models.AgentStatusFree,
	})
	orgs := newFakeOrgRepo(&models.Organization{ID: "o1", OwnerID: "o1", Name: "Sparkle Co", Email: "ops@sparkle.test"})
	bookings := newFakeBookingRepo(agents, orgs)
	services := newFakeServiceRepo(&models.Service{
		ID: "s1", OrganizationID: "o1", Name: "Electrical Inspection",
		BasePrice: 100, Category: "electrical", Active: true,
	})
	clients := newFakeClientRepo(&models.Client{ID: "c1", Name: "Cleo", Email: "c1@test.io"})
	notifier := &fakeNotifier{}
	logger := zap.NewNop()

	clientSvc := &clientsvc.DefaultClientService{
		ClientRepo:  clients,
		BookingRepo: bookings,
		ServiceRepo: services,
		OrgRepo:     orgs,
		Notifier:    notifier,
		Logger:      logger,
	}
	providerSvc := &DefaultProviderService{
		OrgRepo:     orgs,
		AgentRepo:   agents,
		BookingRepo: bookings,
		ClientRepo:  clients,
		ServiceRepo: services,
		Embedder:    embedding.Static{},
		Notifier:    notifier,
		Logger:      logger,
	}
	agentSvc := &agentsvc.DefaultAgentService{
		AgentRepo:   agents,
		BookingRepo: bookings,
		ServiceRepo: services,
		Notifier:    notifier,
		Logger:      logger,
	}
	ctx := context.Background()

	// Client checks out one service with a single extra.
	created, err := clientSvc.CreateBookings(ctx, "c1", []models.BookingItemInput{{
		ServiceID: "s1",
		Date:      "2026-09-10",
		TimeSlot:  "09:00",
		ExtraTasks: []models.ExtraTask{
			{Description: "wiring", Price: 20},
		},
	}})
	require.NoError(t, err)
	require.Len(t, created, 1)
	bookingID := created[0].ID
	assert.Equal(t, 120.0, created[0].TotalPrice)
	assert.Equal(t, models.BookingStatusPending, created[0].Status)
	assert.EqualValues(t, 1, created[0].Version)

	// Provider assigns the agent to the client's booking.
	summary, err := providerSvc.AssignAgent(ctx, "o1", bookingID, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Ray", summary.AgentName)

	assert.Equal(t, models.BookingStatusAssigned, bookings.bookings[bookingID].Status)
	assert.Equal(t, models.AgentStatusBusy, agents.agents["a1"].Status)
	assert.Equal(t, bookingID, agents.agents["a1"].CurrentBookingID)

	// Agent starts the job, then settles it.
	_, err = agentSvc.UpdateStatus(ctx, "a1", bookingID, models.BookingStatusInProgress)
	require.NoError(t, err)

	settled, err := agentSvc.ProcessPayment(ctx, "a1", bookingID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, settled.TotalPrice, "settlement re-derives the same total")
	assert.Equal(t, models.PaymentStatusPaid, settled.PaymentStatus)
	assert.Equal(t, models.BookingStatusCompleted, settled.Status)

	agent := agents.agents["a1"]
	assert.Equal(t, models.AgentStatusFree, agent.Status)
	assert.Empty(t, agent.CurrentBookingID)
	assert.Contains(t, agent.CompletedBookingIDs, bookingID)
}
