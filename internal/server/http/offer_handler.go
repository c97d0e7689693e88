package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
	"github.com/ricardobalbino/mercadolivreInverse/internal/service"
)

// OfferHandler serves offer creation and the ranked offer views.
type OfferHandler struct {
	offers service.OfferService
}

// NewOfferHandler constructs the offer handler.
func NewOfferHandler(offers service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// GET /api/v1/offers?request_id=&seller_id=
func (h *OfferHandler) List(c *fiber.Ctx) error {
	var f model.OfferFilter
	if v := c.Query("request_id"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request_id"})
		}
		f.RequestID = &id
	}
	if v := c.Query("seller_id"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid seller_id"})
		}
		f.SellerID = &id
	}

	list, err := h.offers.List(c.Context(), f)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(list)
}

// POST /api/v1/offers
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in model.NewOffer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}
	if in.Condition == "" {
		in.Condition = "seminovo"
	}
	if in.EtaDays == 0 {
		in.EtaDays = 2
	}

	offer, err := h.offers.Create(c.Context(), actorFromCtx(c), in)
	if err != nil {
		return httpError(c, err)
	}
	return c.Status(201).JSON(offer)
}
