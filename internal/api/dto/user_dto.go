package dto

import (
	"time"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UsersState is the public view of the user slice.
type UsersState struct {
	Users        []domain.User        `json:"users"`
	TotalUsers   int                  `json:"totalUsers"`
	ActiveUsers  int                  `json:"activeUsers"`
	DeletedUsers int                  `json:"deletedUsers"`
	Status       domain.RequestStatus `json:"status"`
	Error        string               `json:"error,omitempty"`
	DeleteStatus domain.RequestStatus `json:"deleteStatus"`
	DeleteError  string               `json:"deleteError,omitempty"`
}

// AuthState is the public view of the auth slice. The token is never echoed.
type AuthState struct {
	LoggedIn  bool                 `json:"loggedIn"`
	User      *domain.Identity     `json:"user,omitempty"`
	ExpiresAt *time.Time           `json:"expiresAt,omitempty"`
	Status    domain.RequestStatus `json:"status"`
	Error     string               `json:"error,omitempty"`
}

// AnalyticsState is the public view of the analytics slice.
type AnalyticsState struct {
	domain.Analytics
	Status domain.RequestStatus `json:"status"`
	Error  string               `json:"error,omitempty"`
}

// State bundles every slice.
type State struct {
	Users     UsersState     `json:"users"`
	Auth      AuthState      `json:"auth"`
	Analytics AnalyticsState `json:"analytics"`
}

// FromUsersState maps the user slice.
func FromUsersState(s store.UsersState) UsersState {
	return UsersState{
		Users:        s.Users,
		TotalUsers:   s.TotalUsers,
		ActiveUsers:  s.ActiveUsers,
		DeletedUsers: s.DeletedUsers,
		Status:       s.Request.Status,
		Error:        s.Request.Error,
		DeleteStatus: s.DeleteRequest.Status,
		DeleteError:  s.DeleteRequest.Error,
	}
}

// FromAuthState maps the auth slice.
func FromAuthState(s store.AuthState) AuthState {
	out := AuthState{
		LoggedIn: s.LoggedIn(),
		Status:   s.Request.Status,
		Error:    s.Request.Error,
	}
	if s.Session != nil {
		identity := s.Session.Identity
		exp := s.Session.ExpiresAt
		out.User = &identity
		out.ExpiresAt = &exp
	}
	return out
}

// FromAnalyticsState maps the analytics slice.
func FromAnalyticsState(s store.AnalyticsState) AnalyticsState {
	return AnalyticsState{
		Analytics: s.Data,
		Status:    s.Request.Status,
		Error:     s.Request.Error,
	}
}

// FromState maps the full store snapshot.
func FromState(s store.State) State {
	return State{
		Users:     FromUsersState(s.Users),
		Auth:      FromAuthState(s.Auth),
		Analytics: FromAnalyticsState(s.Analytics),
	}
}
