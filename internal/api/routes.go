package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowProjectList)

	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/register", handler.Register)
	app.Get("/activate/:uid/:token", handler.Activate)
	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Get("/logout", handler.Logout)

	// Static project paths must register before the :id wildcards.
	app.Get("/projects/mine", handler.AuthRequired, handler.ShowMyProjects)
	app.Get("/projects/create", handler.AuthRequired, handler.ShowCreateProjectPage)
	app.Post("/projects/create", handler.AuthRequired, handler.CreateProject)
	app.Get("/projects/:id", handler.ShowProjectDetail)
	app.Get("/projects/:id/edit", handler.AuthRequired, handler.ShowEditProjectPage)
	app.Post("/projects/:id/edit", handler.AuthRequired, handler.UpdateProject)
	app.Post("/projects/:id/delete", handler.AuthRequired, handler.DeleteProject)
	app.Post("/projects/:id/donate", handler.Donate)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
