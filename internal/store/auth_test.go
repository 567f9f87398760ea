package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/admin-dashboard/internal/domain"
)

func TestAuthState_LoginLogout(t *testing.T) {
	s := NewAuthState()
	assert.False(t, s.LoggedIn())

	s = s.BeginLogin()
	assert.Equal(t, domain.RequestPending, s.Request.Status)

	session := domain.Session{
		Identity:  domain.Identity{ID: 1, Email: "user@example.com", Name: "John Doe"},
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s = s.FulfillLogin(session)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, domain.RequestFulfilled, s.Request.Status)

	s = s.Logout()
	assert.False(t, s.LoggedIn())
	assert.Equal(t, domain.RequestIdle, s.Request.Status)
}

func TestAuthState_RejectLogin(t *testing.T) {
	s := NewAuthState().BeginLogin().RejectLogin(MsgInvalidCredentials)
	assert.False(t, s.LoggedIn())
	assert.Equal(t, domain.RequestRejected, s.Request.Status)
	assert.Equal(t, "Invalid credentials", s.Request.Error)
}

func TestAuthState_RejectKeepsExistingSession(t *testing.T) {
	s := NewAuthState().FulfillLogin(domain.Session{Token: "tok"})
	s = s.BeginLogin().RejectLogin("")
	assert.True(t, s.LoggedIn())
	assert.Equal(t, MsgInvalidCredentials, s.Request.Error)
}

func TestAuthState_CloneCopiesSession(t *testing.T) {
	s := NewAuthState().FulfillLogin(domain.Session{Token: "tok"})
	c := s.Clone()
	c.Session.Token = "other"
	assert.Equal(t, "tok", s.Session.Token)
}
