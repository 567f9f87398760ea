package store

import "github.com/spec-kit/admin-dashboard/internal/domain"

// MsgInvalidCredentials is stored on the auth slice after a failed login.
const MsgInvalidCredentials = "Invalid credentials"

// AuthState is the auth slice. Session is nil unless a login succeeded and no
// logout happened since.
type AuthState struct {
	Session *domain.Session     `json:"session,omitempty"`
	Request domain.RequestState `json:"request"`
}

// NewAuthState returns the idle, logged-out auth slice.
func NewAuthState() AuthState {
	return AuthState{Request: domain.Idle()}
}

// BeginLogin moves the slice to pending.
func (s AuthState) BeginLogin() AuthState {
	s.Request = s.Request.Begin()
	return s
}

// FulfillLogin stores session.
func (s AuthState) FulfillLogin(session domain.Session) AuthState {
	s.Session = &session
	s.Request = s.Request.Fulfill()
	return s
}

// RejectLogin records a failed login. An existing session is kept.
func (s AuthState) RejectLogin(msg string) AuthState {
	s.Request = s.Request.Reject(msg, MsgInvalidCredentials)
	return s
}

// Logout clears the session and returns the slice to idle.
func (s AuthState) Logout() AuthState {
	return NewAuthState()
}

// LoggedIn reports whether a session is present.
func (s AuthState) LoggedIn() bool {
	return s.Session != nil
}

// Clone returns a copy that shares no memory with s.
func (s AuthState) Clone() AuthState {
	if s.Session != nil {
		sess := *s.Session
		s.Session = &sess
	}
	return s
}
