package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-dashboard/internal/api/dto"
	"github.com/spec-kit/admin-dashboard/internal/service"
)

// AnalyticsHandler exposes the analytics view.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsService}
}

// Get handles GET /api/analytics.
func (h *AnalyticsHandler) Get(c *fiber.Ctx) error {
	state, _ := h.analytics.EnsureAnalytics(c.UserContext())
	return c.JSON(fiber.Map{"data": dto.FromAnalyticsState(state)})
}

// Fetch handles POST /api/analytics/fetch.
func (h *AnalyticsHandler) Fetch(c *fiber.Ctx) error {
	state, err := h.analytics.FetchAnalytics(c.UserContext())
	return settled(c, dto.FromAnalyticsState(state), err)
}
