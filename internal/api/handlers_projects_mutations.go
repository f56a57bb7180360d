package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crowdconsole/crowdfund/internal/services"
)

func (handler *Handler) ShowCreateProjectPage(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return handler.render(c, "project_form", fiber.Map{
		"Title":       "Crowdfund | New Project",
		"CurrentUser": user,
		"Flash":       popFlashCookie(c),
		"FormAction":  "/projects/create",
		"MaxTarget":   handler.maxTargetAmount,
	})
}

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	input, parseError := handler.parseProjectForm(c)
	if parseError != "" {
		return handler.respondProjectFormError(c, "/projects/create", fiber.StatusBadRequest, parseError)
	}

	project, err := handler.projectService.Create(user, input, time.Now().In(handler.location))
	if err != nil {
		message := formErrorMessage(err)
		if message == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to create project")
		}
		return handler.respondProjectFormError(c, "/projects/create", fiber.StatusBadRequest, message)
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "project_id": project.ID})
	}
	setFlashCookie(c, FlashPayload{Success: "Project created."})
	return c.Redirect(projectDetailPath(project.ID), fiber.StatusSeeOther)
}

func (handler *Handler) ShowEditProjectPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return handler.NotFound(c)
	}
	project, err := handler.projectService.Get(projectID)
	if err != nil {
		return handler.NotFound(c)
	}
	if !services.CanModifyProject(user, project) {
		return apiError(c, fiber.StatusForbidden, "you do not own this project")
	}

	return handler.render(c, "project_form", fiber.Map{
		"Title":       "Crowdfund | Edit Project",
		"CurrentUser": user,
		"Flash":       popFlashCookie(c),
		"FormAction":  projectDetailPath(project.ID) + "/edit",
		"Project":     project,
		"MaxTarget":   handler.maxTargetAmount,
	})
}

func (handler *Handler) UpdateProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return handler.NotFound(c)
	}

	editPath := projectDetailPath(projectID) + "/edit"
	input, parseError := handler.parseProjectForm(c)
	if parseError != "" {
		return handler.respondProjectFormError(c, editPath, fiber.StatusBadRequest, parseError)
	}

	project, err := handler.projectService.Update(user, projectID, input, time.Now().In(handler.location))
	switch {
	case err == nil:
	case errors.Is(err, services.ErrProjectNotFound):
		return handler.NotFound(c)
	case errors.Is(err, services.ErrNotProjectOwner):
		return apiError(c, fiber.StatusForbidden, "you do not own this project")
	default:
		message := formErrorMessage(err)
		if message == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to update project")
		}
		return handler.respondProjectFormError(c, editPath, fiber.StatusBadRequest, message)
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{Success: "Project updated."})
	return c.Redirect(projectDetailPath(project.ID), fiber.StatusSeeOther)
}

func (handler *Handler) DeleteProject(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	projectID, err := parseProjectID(c)
	if err != nil {
		return handler.NotFound(c)
	}

	switch err := handler.projectService.Delete(user, projectID); {
	case err == nil:
	case errors.Is(err, services.ErrProjectNotFound):
		return handler.NotFound(c)
	case errors.Is(err, services.ErrNotProjectOwner):
		return apiError(c, fiber.StatusForbidden, "you do not own this project")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to delete project")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	setFlashCookie(c, FlashPayload{Success: "Project deleted."})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (handler *Handler) respondProjectFormError(c *fiber.Ctx, formPath string, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	setFlashCookie(c, FlashPayload{FormError: message})
	return c.Redirect(formPath, fiber.StatusSeeOther)
}

func projectDetailPath(projectID uint) string {
	return fmt.Sprintf("/projects/%d", projectID)
}
