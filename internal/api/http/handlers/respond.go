package handlers

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// settled writes the snapshot of a dispatched action. A rejected action keeps
// the snapshot in the body next to the error so the view can still render it.
func settled(c *fiber.Ctx, data any, err error) error {
	if err == nil {
		return c.JSON(fiber.Map{"data": data})
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.HTTPStatus >= fiber.StatusInternalServerError && domainErr.Code == "INTERNAL_ERROR" {
		return err
	}
	body := fiber.Map{
		"code":    domainErr.Code,
		"message": domainErr.Message,
	}
	if len(domainErr.Details) > 0 {
		body["details"] = domainErr.Details
	}
	return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"data": data, "error": body})
}
