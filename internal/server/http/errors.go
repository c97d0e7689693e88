package httpserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
)

// httpError maps service-layer sentinels to HTTP statuses. Everything
// unclassified is an opaque 500; infrastructure faults are 503 and may be
// retried by the caller with backoff.
func httpError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, errs.ErrInvalidOffer):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		return c.Status(403).JSON(fiber.Map{"error": "access denied"})
	case errors.Is(err, errs.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, errs.ErrAlreadyAccepted):
		return c.Status(409).JSON(fiber.Map{"error": "request already accepted"})
	case errors.Is(err, errs.ErrStoreUnavailable):
		return c.Status(503).JSON(fiber.Map{"error": "store unavailable, retry later"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "internal server error"})
	}
}
