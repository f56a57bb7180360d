package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crowdconsole/crowdfund/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.respondRegisterError(c, fiber.StatusBadRequest, "Invalid input.", "")
	}

	now := time.Now().In(handler.location)
	user, err := handler.authService.Register(services.RegistrationInput{
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		MobilePhone:     input.MobilePhone,
	}, now)
	if err != nil {
		message := formErrorMessage(err)
		if message == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
		status := fiber.StatusBadRequest
		if errors.Is(err, services.ErrDuplicateEmail) {
			status = fiber.StatusConflict
		}
		return handler.respondRegisterError(c, status, message, input.Email)
	}

	if handler.activationRequired {
		token, err := handler.buildActivationToken(user, activationTokenTTL)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to create activation token")
		}
		handler.mailService.SendActivationEmail(user, handler.activationURL(user.ID, token))

		if acceptsJSON(c) {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "activation_required": true})
		}
		setFlashCookie(c, FlashPayload{Success: "Please check your email to activate your account."})
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	if err := handler.setAuthCookie(c, user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.respondLoginError(c, "Invalid email or password.", "")
	}
	rememberMe := parseBoolValue(credentials.RememberMe)

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		return handler.respondLoginError(c, formErrorMessage(err), credentials.Email)
	}

	if err := handler.setAuthCookie(c, user, rememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return redirectOrJSON(c, "/")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{Success: "You have been logged out."})
	return c.Redirect("/", fiber.StatusSeeOther)
}
