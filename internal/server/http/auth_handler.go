package httpserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
	"github.com/ricardobalbino/mercadolivreInverse/internal/service"
)

// AuthHandler issues signed actor tokens. Real authentication lives outside
// this system; the token endpoint stands in for it and keeps the caller
// identity explicit on every downstream call.
type AuthHandler struct {
	users     service.UserService
	signKey   []byte
	accessTTL time.Duration
}

// NewAuthHandler constructs the auth handler.
func NewAuthHandler(users service.UserService, signKey []byte, accessTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, signKey: signKey, accessTTL: accessTTL}
}

type tokenRequest struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	City        string `json:"city"`
}

// POST /api/v1/auth/token
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	var id uuid.UUID
	if req.ID != "" {
		parsed, err := uuid.FromString(req.ID)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid actor id"})
		}
		id = parsed
	} else {
		fresh, err := uuid.NewV4()
		if err != nil {
			return httpError(c, err)
		}
		id = fresh
	}

	actor := model.Actor{ID: id, DisplayName: req.DisplayName, Role: model.Role(req.Role), City: req.City}
	user, err := h.users.Provision(c.Context(), actor)
	if err != nil {
		return httpError(c, err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"name": user.DisplayName,
		"role": string(user.Role),
		"city": user.City,
		"iat":  now.Unix(),
		"exp":  now.Add(h.accessTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.signKey)
	if err != nil {
		return httpError(c, err)
	}

	return c.JSON(fiber.Map{"accessToken": signed, "user": user})
}
