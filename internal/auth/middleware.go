package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// SessionValidator resolves a bearer token to the identity of the live session.
type SessionValidator interface {
	Authenticate(ctx context.Context, token string) (*domain.Identity, error)
}

// Principal represents the authenticated caller.
type Principal struct {
	Identity domain.Identity
	Token    string
}

// AuthMiddleware validates bearer tokens against the auth slice.
type AuthMiddleware struct {
	sessions SessionValidator
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, err := bearerToken(c.Get("Authorization"))
	if err != nil {
		return err
	}

	identity, err := m.sessions.Authenticate(c.UserContext(), token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired session")
	}

	c.Locals(principalKey, &Principal{Identity: *identity, Token: token})
	return c.Next()
}

// Optional returns a handler that lets every request through, or Handle when
// required is true.
func (m *AuthMiddleware) Optional(required bool) fiber.Handler {
	if required {
		return m.Handle
	}
	return func(c *fiber.Ctx) error { return c.Next() }
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.NewUnauthorized("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
