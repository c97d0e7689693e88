// Package httpserver exposes the negotiation engine as a JSON HTTP API.
package httpserver

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/ricardobalbino/mercadolivreInverse/internal/service"
)

// Pinger checks store connectivity for the readiness probe.
// Implemented by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps collects everything the HTTP surface needs.
type Deps struct {
	Users      service.UserService
	Requests   service.RequestService
	Offers     service.OfferService
	Accept     service.AcceptanceService
	Reputation service.ReputationService
	Seed       service.SeedService

	Store     Pinger
	SignKey   []byte
	AdminKey  string
	AccessTTL time.Duration
}

// New builds the fiber application with all routes and middleware wired.
func New(log *zap.Logger, d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // 1MB
	})

	app.Use(recover.New())
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if d.Store != nil {
			if err := d.Store.Ping(ctx); err != nil {
				return c.Status(503).JSON(fiber.Map{"status": "not ready", "error": "database unreachable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	// Simulated-actor tokens (public)
	authH := NewAuthHandler(d.Users, d.SignKey, d.AccessTTL)
	v1.Post("/auth/token", RateLimit(10, time.Minute), authH.Token)

	// Admin
	admin := v1.Group("/admin", AdminKey(d.AdminKey))
	admin.Post("/seed", func(c *fiber.Ctx) error {
		if err := d.Seed.Seed(c.Context()); err != nil {
			return httpError(c, err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	requestH := NewRequestHandler(d.Requests, d.Accept, d.Reputation)
	offerH := NewOfferHandler(d.Offers)
	userH := NewUserHandler(d.Users, d.Reputation)

	// Public reads. "/users/me" must precede the ":id" routes.
	v1.Get("/requests", requestH.List)
	v1.Get("/requests/:id", requestH.Get)
	v1.Get("/offers", offerH.List)
	v1.Get("/users/me", Identity(d.SignKey), userH.Me)
	v1.Get("/users/:id/ratings", userH.Ratings)
	v1.Get("/users/:id", userH.Get)

	// Identity-bound operations
	protected := v1.Group("", Identity(d.SignKey))
	protected.Put("/users/:id", userH.Update)
	protected.Post("/requests", RateLimit(30, time.Minute), requestH.Create)
	protected.Delete("/requests/:id", requestH.Delete)
	protected.Post("/requests/:id/accept", requestH.Accept)
	protected.Post("/requests/:id/rating", requestH.Rate)
	protected.Post("/offers", RateLimit(30, time.Minute), offerH.Create)

	return app
}
