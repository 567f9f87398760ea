package domain

import "time"

// Identity is the fixed principal returned by a successful login.
type Identity struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session represents the in-memory login session. It is never persisted.
type Session struct {
	Identity  Identity
	Token     string
	ExpiresAt time.Time
}
