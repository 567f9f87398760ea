package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/events"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
		DemoEmail:             "user@example.com",
		DemoPassword:          "password123",
		DemoName:              "John Doe",
	}
}

func newAuthService(t *testing.T, dispatcher events.Dispatcher) (*AuthService, *store.Store) {
	t.Helper()
	st := store.New()
	svc, err := NewAuthService(testAuthConfig(), st, dispatcher, nil)
	require.NoError(t, err)
	return svc, st
}

func TestAuthService_Login(t *testing.T) {
	rec := &recordingDispatcher{}
	svc, st := newAuthService(t, rec)

	session, err := svc.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{ID: 1, Email: "user@example.com", Name: "John Doe"}, session.Identity)
	assert.NotEmpty(t, session.Token)

	state := st.Auth()
	assert.True(t, state.LoggedIn())
	assert.Equal(t, domain.RequestFulfilled, state.Request.Status)
	assert.Equal(t, []events.EventType{events.EventLoginSucceeded}, rec.types())
}

func TestAuthService_LoginRejected(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "user@example.com", password: "nope"},
		{name: "wrong email", email: "other@example.com", password: "password123"},
		{name: "empty", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingDispatcher{}
			svc, st := newAuthService(t, rec)

			session, err := svc.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, session)

			state := st.Auth()
			assert.False(t, state.LoggedIn())
			assert.Equal(t, domain.RequestRejected, state.Request.Status)
			assert.Equal(t, "Invalid credentials", state.Request.Error)
			assert.Equal(t, []events.EventType{events.EventLoginFailed}, rec.types())
		})
	}
}

func TestAuthService_LogoutAndAuthenticate(t *testing.T) {
	svc, st := newAuthService(t, nil)

	session, err := svc.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	identity, err := svc.Authenticate(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Identity, *identity)

	state := svc.Logout(context.Background())
	assert.False(t, state.LoggedIn())
	assert.Equal(t, domain.RequestIdle, st.Auth().Request.Status)

	_, err = svc.Authenticate(context.Background(), session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_ReplacedSessionTokenRejected(t *testing.T) {
	svc, _ := newAuthService(t, nil)

	first, err := svc.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), first.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Authenticate(context.Background(), second.Token)
	assert.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAuthService_LogoutWithoutSession(t *testing.T) {
	svc, _ := newAuthService(t, nil)
	state := svc.Logout(context.Background())
	assert.False(t, state.LoggedIn())
	assert.Equal(t, domain.RequestIdle, state.Request.Status)
}
