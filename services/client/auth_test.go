package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fieldserve/utils"
)

func newAuthTestService() (*DefaultClientService, *fakeClientRepo) {
	clients := newFakeClientRepo()
	svc := &DefaultClientService{
		ClientRepo:  clients,
		BookingRepo: newFakeBookingRepo(),
		ServiceRepo: newFakeServiceRepo(),
		ReviewRepo:  newFakeReviewRepo(newFakeOrgRepo()),
		OrgRepo:     newFakeOrgRepo(),
		Notifier:    &fakeNotifier{},
		Logger:      zap.NewNop(),
	}
	return svc, clients
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, clients := newAuthTestService()

	acct, token, err := svc.Register(context.Background(), "Jane", "Jane@Example.com", "123", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", acct.Email, "email normalized")

	stored := clients.clients[acct.ID]
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.True(t, utils.CheckPassword(stored.PasswordHash, "supersecret"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Jane", "jane@example.com", "", "supersecret")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Impostor", "jane@example.com", "", "alsosecret")
	var conflict utils.ConflictError
	require.True(t, errors.As(err, &conflict))
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newAuthTestService()

	_, _, err := svc.Register(context.Background(), "Jane", "jane@example.com", "", "short")
	var v utils.ValidationError
	require.True(t, errors.As(err, &v))
}

func TestSignIn(t *testing.T) {
	svc, _ := newAuthTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Jane", "jane@example.com", "", "supersecret")
	require.NoError(t, err)

	acct, token, err := svc.SignIn(ctx, "jane@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", acct.Email)

	_, _, err = svc.SignIn(ctx, "jane@example.com", "wrong")
	var unauth utils.UnauthorizedError
	require.True(t, errors.As(err, &unauth))

	// Unknown accounts fail the same way as bad passwords.
	_, _, err = svc.SignIn(ctx, "ghost@example.com", "whatever")
	require.True(t, errors.As(err, &unauth))
}
