package core_test

import (
	"context"
	"testing"

	"invoiceease/internal/core"
	"invoiceease/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T) (core.AuthService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	return core.NewAuthService(store, zerolog.Nop()), store
}

func TestAuthService_SignUpAndSession(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	user, err := auth.SignUp(ctx, "  a@x.com ", " Acme ")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Acme", user.ProfileName)
	assert.False(t, user.CreatedAt.IsZero())

	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "a@x.com", current.Email)
}

func TestAuthService_SignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	_, err := auth.SignUp(ctx, "a@x.com", "Acme")
	require.NoError(t, err)

	// case-insensitive, trimmed match
	_, err = auth.SignUp(ctx, " A@X.COM ", "Other")
	assert.ErrorIs(t, err, core.ErrDuplicateUser)
}

func TestAuthService_SignInUnknownEmail(t *testing.T) {
	ctx := context.Background()
	auth, _ := newAuth(t)

	_, err := auth.SignIn(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, core.ErrUserNotFound)

	// session stays unset after a failed sign-in
	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestAuthService_SignOutRetainsUserList(t *testing.T) {
	ctx := context.Background()
	auth, store := newAuth(t)

	_, err := auth.SignUp(ctx, "a@x.com", "Acme")
	require.NoError(t, err)
	require.NoError(t, auth.SignOut(ctx))

	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	// the account survives sign-out and can sign back in
	user, err := auth.SignIn(ctx, "A@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	// user list slot still holds the account
	raw, err := store.Get(ctx, "invoicecraft-local-users")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "a@x.com")
}

func TestAuthService_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := core.NewAuthService(store, zerolog.Nop())
	_, err := first.SignUp(ctx, "a@x.com", "Acme")
	require.NoError(t, err)

	// a fresh service over the same storage sees the persisted session
	second := core.NewAuthService(store, zerolog.Nop())
	current, err := second.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "a@x.com", current.Email)
}

func TestIdentityKey(t *testing.T) {
	assert.Equal(t, "a@x.com", core.IdentityKey(&core.User{Email: "a@x.com", ProfileName: "Acme"}))
	assert.Equal(t, "Acme", core.IdentityKey(&core.User{ProfileName: "Acme"}))
	assert.Equal(t, "", core.IdentityKey(nil))
}
