package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-dashboard/internal/api/dto"
	"github.com/spec-kit/admin-dashboard/internal/selector"
	"github.com/spec-kit/admin-dashboard/internal/service"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// UsersHandler exposes the user management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List handles GET /api/users. The first read of an idle slice triggers the
// initial fetch; a failed fetch is reported inside the table's request state.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	_, _ = h.users.EnsureUsers(c.UserContext())

	table := h.users.Table(selector.TableQuery{
		Search: c.Query("search"),
		Page:   c.QueryInt("page", 1),
		Region: c.Query("region"),
		Toggle: c.Query("toggle"),
	})
	return c.JSON(fiber.Map{"data": table})
}

// Fetch handles POST /api/users/fetch.
func (h *UsersHandler) Fetch(c *fiber.Ctx) error {
	state, err := h.users.FetchUsers(c.UserContext())
	return settled(c, dto.FromUsersState(state), err)
}

// Delete handles DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperrors.NewValidationError("user id must be a positive integer", map[string]any{"id": c.Params("id")})
	}
	state, err := h.users.DeleteUser(c.UserContext(), id)
	return settled(c, dto.FromUsersState(state), err)
}
