package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-dashboard/internal/api/dto"
	"github.com/spec-kit/admin-dashboard/internal/store"
)

// StateHandler serves the read-only snapshot of every slice.
type StateHandler struct {
	store *store.Store
}

// NewStateHandler constructs handler.
func NewStateHandler(st *store.Store) *StateHandler {
	return &StateHandler{store: st}
}

// Get handles GET /api/state.
func (h *StateHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.FromState(h.store.Snapshot())})
}
