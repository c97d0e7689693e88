package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/service"
)

// UserHandler serves actor profiles and their received ratings.
type UserHandler struct {
	users      service.UserService
	reputation service.ReputationService
}

// NewUserHandler constructs the user handler.
func NewUserHandler(users service.UserService, reputation service.ReputationService) *UserHandler {
	return &UserHandler{users: users, reputation: reputation}
}

// GET /api/v1/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.users.Get(c.Context(), actorFromCtx(c).ID)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(user)
}

// GET /api/v1/users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid user id"})
	}
	user, err := h.users.Get(c.Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(user)
}

// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid user id"})
	}

	var body struct {
		DisplayName string `json:"displayName"`
		City        string `json:"city"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.users.UpdateProfile(c.Context(), actorFromCtx(c).ID, id, body.DisplayName, body.City)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(user)
}

// GET /api/v1/users/:id/ratings
func (h *UserHandler) Ratings(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid user id"})
	}
	list, err := h.reputation.ListForUser(c.Context(), id)
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(list)
}
