package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/auth"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/events"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

var (
	// ErrInvalidCredentials is returned for any pair other than the configured one.
	ErrInvalidCredentials = errors.New(store.MsgInvalidCredentials)
	// ErrSessionNotFound indicates the token does not belong to the live session.
	ErrSessionNotFound = errors.New("session not found")
)

// AuthService dispatches the auth slice actions. The credential check is
// local; no network call is made.
type AuthService struct {
	store        *store.Store
	tokenMgr     *auth.TokenManager
	email        string
	passwordHash string
	identity     domain.Identity
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewAuthService builds the service and hashes the demo password.
func NewAuthService(cfg config.AuthConfig, st *store.Store, dispatcher events.Dispatcher, logger *zap.Logger) (*AuthService, error) {
	hash, err := auth.HashPassword(cfg.DemoPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}
	if dispatcher == nil {
		dispatcher = events.NopDispatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		store:        st,
		tokenMgr:     auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		email:        cfg.DemoEmail,
		passwordHash: hash,
		identity:     domain.Identity{ID: 1, Email: cfg.DemoEmail, Name: cfg.DemoName},
		dispatcher:   dispatcher,
		logger:       logger,
	}, nil
}

// TokenManager exposes token manager for middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login checks the credential pair and opens the session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	s.store.UpdateAuth(func(st store.AuthState) store.AuthState {
		return st.BeginLogin()
	})

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	if !emailOK || auth.ComparePassword(s.passwordHash, password) != nil {
		s.store.UpdateAuth(func(st store.AuthState) store.AuthState {
			return st.RejectLogin(store.MsgInvalidCredentials)
		})
		publish(ctx, s.dispatcher, s.logger, events.New(events.EventLoginFailed, events.SliceAuth,
			domain.RequestRejected, events.FailurePayload{Message: store.MsgInvalidCredentials}))
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.GenerateToken(s.identity)
	if err != nil {
		s.logger.Error("issue session token", zap.Error(err))
		s.store.UpdateAuth(func(st store.AuthState) store.AuthState {
			return st.RejectLogin("Login failed")
		})
		return nil, fmt.Errorf("issue token: %w", err)
	}

	session := domain.Session{Identity: s.identity, Token: token, ExpiresAt: exp}
	s.store.UpdateAuth(func(st store.AuthState) store.AuthState {
		return st.FulfillLogin(session)
	})
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventLoginSucceeded, events.SliceAuth,
		domain.RequestFulfilled, events.SessionPayload{Email: s.identity.Email}))
	return &session, nil
}

// Logout clears the session unconditionally.
func (s *AuthService) Logout(ctx context.Context) store.AuthState {
	state := s.store.UpdateAuth(func(st store.AuthState) store.AuthState {
		return st.Logout()
	})
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventLoggedOut, events.SliceAuth,
		state.Request.Status, nil))
	return state
}

// Authenticate resolves token to the identity of the live session. Tokens
// from a session that was logged out, replaced or expired are rejected.
func (s *AuthService) Authenticate(_ context.Context, token string) (*domain.Identity, error) {
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	current := s.store.Auth()
	if current.Session == nil ||
		subtle.ConstantTimeCompare([]byte(current.Session.Token), []byte(token)) != 1 {
		return nil, ErrSessionNotFound
	}

	identity, err := claims.Identity()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return &identity, nil
}

// Snapshot returns a copy of the auth slice.
func (s *AuthService) Snapshot() store.AuthState {
	return s.store.Auth()
}
