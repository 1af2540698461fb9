package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokevault/pokedex-service/internal/auth"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

func newTestService(store *fakeStore) *Service {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewService(store, tokens, &fakeAI{reply: "ok"}, &fakeCatalog{}, testLogger())
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)

	user, token, err := svc.Register(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	// Token round-trips to the same user id.
	userID, err := svc.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)

	_, _, err := svc.Register(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "a@x.com", "other-password")
	assert.ErrorIs(t, err, serviceerrors.NewDuplicateEmail())
	assert.Len(t, store.users, 1)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)

	registered, _, err := svc.Register(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)

	_, _, err := svc.Register(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "a@x.com", "wrong")
	_, _, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "secret1")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Equal(t,
		serviceerrors.FromError(wrongPassword).Code,
		serviceerrors.FromError(unknownEmail).Code)
	assert.ErrorIs(t, wrongPassword, serviceerrors.NewInvalidCredentials())
	assert.ErrorIs(t, unknownEmail, serviceerrors.NewInvalidCredentials())
}

func TestProfile(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)

	user, _, err := svc.Register(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	got, err := svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.Profile(context.Background(), user.ID+100)
	assert.ErrorIs(t, err, serviceerrors.NewNotFound("User not found"))
}
