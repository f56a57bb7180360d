package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	redirected, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil || redirected {
		return err
	}

	flash := popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":      "Crowdfund | Login",
		"Flash":      flash,
		"LoginEmail": flash.LoginEmail,
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	redirected, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil || redirected {
		return err
	}

	flash := popFlashCookie(c)
	return handler.render(c, "register", fiber.Map{
		"Title":         "Crowdfund | Register",
		"Flash":         flash,
		"RegisterEmail": flash.RegisterEmail,
	})
}
