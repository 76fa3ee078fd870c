package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nexushq/talent-registry/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The admin group sits
// behind the JWT middleware plus the admin role gate.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	reg *handlers.RegistryHandler,
	match *handlers.MatchHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
	adminMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Post("/verify-email", auth.VerifyEmail)
	a.Post("/forgot-password", auth.ForgotPassword)
	a.Post("/reset-password", auth.ResetPassword)
	a.Get("/me", authMW, auth.Me)

	admin := v1.Group("/admin", authMW, adminMW)
	admin.Get("/candidates", reg.List)
	admin.Get("/stats", reg.Stats)
	admin.Post("/candidates/:id/approve", reg.Approve)
	admin.Post("/candidates/:id/reject", reg.Reject)
	admin.Post("/candidates/:id/pending", reg.ResetToPending)
	admin.Post("/candidates/:id/toggle-verification", reg.ToggleVerification)
	admin.Delete("/candidates/:id", reg.Remove)
	admin.Post("/candidates/:id/insight", match.Insight)
	admin.Post("/match", match.Correlate)
}
