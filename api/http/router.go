package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thesanmark/auth-api/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app. The guard
// middleware resolves the bearer identity for the protected routes.
func Register(app *fiber.App, authH *handlers.AuthHandler, healthH *handlers.HealthHandler, guard fiber.Handler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", healthH.Health)
	api.Get("/ready", healthH.Ready)

	api.Post("/register", authH.Register)
	api.Post("/login", authH.Login)

	api.Get("/profile", guard, authH.Profile)
	api.Get("/logout", guard, authH.Logout)
}
