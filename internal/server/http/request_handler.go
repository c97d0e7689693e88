package httpserver

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
	"github.com/ricardobalbino/mercadolivreInverse/internal/service"
)

// RequestHandler serves the request lifecycle, the acceptance transition and
// post-acceptance ratings.
type RequestHandler struct {
	requests   service.RequestService
	accept     service.AcceptanceService
	reputation service.ReputationService
}

// NewRequestHandler constructs the request handler.
func NewRequestHandler(requests service.RequestService, accept service.AcceptanceService, reputation service.ReputationService) *RequestHandler {
	return &RequestHandler{requests: requests, accept: accept, reputation: reputation}
}

// GET /api/v1/requests
func (h *RequestHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	list, err := h.requests.List(c.Context(), limit, offset)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(list)
}

// GET /api/v1/requests/:id
func (h *RequestHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request id"})
	}
	req, err := h.requests.Get(c.Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(req)
}

// POST /api/v1/requests
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in model.NewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if in.RadiusKm == 0 {
		in.RadiusKm = 10
	}

	req, err := h.requests.Create(c.Context(), actorFromCtx(c), in)
	if err != nil {
		return httpError(c, err)
	}
	return c.Status(201).JSON(req)
}

// DELETE /api/v1/requests/:id
func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request id"})
	}
	if err := h.requests.Delete(c.Context(), id, actorFromCtx(c).ID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// POST /api/v1/requests/:id/accept
func (h *RequestHandler) Accept(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request id"})
	}

	var body struct {
		OfferID string `json:"offerId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	offerID, err := uuid.FromString(body.OfferID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid offer id"})
	}

	if err := h.accept.Accept(c.Context(), id, offerID, actorFromCtx(c).ID); err != nil {
		return httpError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// POST /api/v1/requests/:id/rating
func (h *RequestHandler) Rate(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request id"})
	}

	var body struct {
		Score   float64 `json:"score"`
		Comment string  `json:"comment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	rating, err := h.reputation.Rate(c.Context(), id, actorFromCtx(c).ID, body.Score, body.Comment)
	if err != nil {
		return httpError(c, err)
	}
	return c.Status(201).JSON(rating)
}
