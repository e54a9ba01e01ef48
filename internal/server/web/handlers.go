package web

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/adiomi90/alx-backend-user-data/internal/common"
	"github.com/adiomi90/alx-backend-user-data/internal/logging"
	"github.com/adiomi90/alx-backend-user-data/internal/server/auth"
)

var validate = validator.New()

type Handler struct {
	auth *auth.Service
	log  logging.Logger
}

type credentialsInput struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type resetRequestInput struct {
	Email string `form:"email" validate:"required,email"`
}

type updatePasswordInput struct {
	Email       string `form:"email"`
	ResetToken  string `form:"reset_token" validate:"required"`
	NewPassword string `form:"new_password" validate:"required"`
}

func (h *Handler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Bienvenue"})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.auth.Register(c.UserContext(), input.Email, input.Password); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "email already registered"})
		}
		h.log.Error(c.UserContext(), "register failed", "err", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"email": input.Email, "message": "user created"})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ok, err := h.auth.ValidLogin(c.UserContext(), input.Email, input.Password)
	if err != nil {
		h.log.Error(c.UserContext(), "login failed", "err", err)
		return fiber.ErrInternalServerError
	}
	if !ok {
		return fiber.ErrUnauthorized
	}

	token, err := h.auth.CreateSession(c.UserContext(), input.Email)
	if err != nil {
		h.log.Error(c.UserContext(), "session creation failed", "err", err)
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{Name: SessionCookie, Value: token, HTTPOnly: true})

	return c.JSON(fiber.Map{"email": input.Email, "message": "logged in"})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	u, err := h.auth.UserFromSession(c.UserContext(), c.Cookies(SessionCookie))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fiber.ErrForbidden
		}
		h.log.Error(c.UserContext(), "session lookup failed", "err", err)
		return fiber.ErrInternalServerError
	}

	if err := h.auth.DestroySession(c.UserContext(), u.ID); err != nil {
		h.log.Error(c.UserContext(), "logout failed", "err", err)
		return fiber.ErrInternalServerError
	}

	c.ClearCookie(SessionCookie)

	return c.Redirect("/")
}

func (h *Handler) Profile(c *fiber.Ctx) error {
	u, err := h.auth.UserFromSession(c.UserContext(), c.Cookies(SessionCookie))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fiber.ErrForbidden
		}
		h.log.Error(c.UserContext(), "session lookup failed", "err", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"email": u.Email})
}

func (h *Handler) ResetPasswordToken(c *fiber.Ctx) error {
	var input resetRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := h.auth.ResetPasswordToken(c.UserContext(), input.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fiber.ErrForbidden
		}
		h.log.Error(c.UserContext(), "reset token issuance failed", "err", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"email": input.Email, "reset_token": token})
}

func (h *Handler) UpdatePassword(c *fiber.Ctx) error {
	var input updatePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.auth.UpdatePassword(c.UserContext(), input.ResetToken, input.NewPassword); err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return fiber.ErrForbidden
		}
		h.log.Error(c.UserContext(), "password update failed", "err", err)
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"email": input.Email, "message": "Password updated"})
}
