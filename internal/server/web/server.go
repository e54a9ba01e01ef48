// Package web exposes the auth service over HTTP. It owns form
// parsing, the session cookie, and status-code mapping; all business
// rules stay in the auth package.
package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adiomi90/alx-backend-user-data/internal/logging"
	"github.com/adiomi90/alx-backend-user-data/internal/server/auth"
)

// SessionCookie is the cookie carrying the raw session token.
const SessionCookie = "session_id"

// New builds the fiber application with all routes registered.
func New(svc *auth.Service, log logging.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	h := &Handler{auth: svc, log: log}

	app.Get("/", h.Index)
	app.Post("/users", h.Register)
	app.Post("/sessions", h.Login)
	app.Delete("/sessions", h.Logout)
	app.Get("/profile", h.Profile)
	app.Post("/reset_password", h.ResetPasswordToken)
	app.Put("/reset_password", h.UpdatePassword)

	return app
}
