package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crowdconsole/crowdfund/internal/services"
)

// formErrorMessage maps service errors onto user-facing form feedback.
// Unknown errors get an empty string and are treated as server faults.
func formErrorMessage(err error) string {
	var fieldErr *services.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Message
	}
	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		return "This email is already registered."
	case errors.Is(err, services.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, services.ErrAccountInactive):
		return "This account has not been activated yet. Check your email for the activation link."
	case errors.Is(err, services.ErrSelfDonation):
		return "You cannot donate to your own project."
	case errors.Is(err, services.ErrProjectNotFound):
		return "Project not found."
	default:
		return ""
	}
}

func (handler *Handler) respondLoginError(c *fiber.Ctx, message string, email string) error {
	if acceptsJSON(c) {
		return apiError(c, fiber.StatusUnauthorized, message)
	}
	setFlashCookie(c, FlashPayload{AuthError: message, LoginEmail: email})
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) respondRegisterError(c *fiber.Ctx, status int, message string, email string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	setFlashCookie(c, FlashPayload{AuthError: message, RegisterEmail: email})
	return c.Redirect("/register", fiber.StatusSeeOther)
}

func (handler *Handler) redirectAuthenticatedUserIfPresent(c *fiber.Ctx) (bool, error) {
	user := handler.optionalAuthenticatedUser(c)
	if user == nil {
		return false, nil
	}
	return true, c.Redirect("/", fiber.StatusSeeOther)
}
