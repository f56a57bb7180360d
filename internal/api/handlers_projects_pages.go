package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crowdconsole/crowdfund/internal/models"
	"github.com/crowdconsole/crowdfund/internal/services"
)

func (handler *Handler) ShowProjectList(c *fiber.Ctx) error {
	user := handler.optionalAuthenticatedUser(c)
	flash := popFlashCookie(c)

	titleQuery := c.Query("q")
	dateQuery := c.Query("date")

	activeOn, ok := parseDateQuery(dateQuery, handler.location)
	projects := []models.Project{}
	if ok {
		listed, err := handler.projectService.ListActive(titleQuery, activeOn)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load projects")
		}
		projects = listed
	}

	return handler.render(c, "project_list", fiber.Map{
		"Title":       "Crowdfund | Projects",
		"CurrentUser": user,
		"Flash":       flash,
		"Projects":    projects,
		"Query":       titleQuery,
		"DateQuery":   dateQuery,
	})
}

func (handler *Handler) ShowProjectDetail(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return handler.NotFound(c)
	}

	project, err := handler.projectService.Get(projectID)
	if err != nil {
		return handler.NotFound(c)
	}

	total, err := handler.donationService.TotalDonated(project.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load donations")
	}
	recent, err := handler.donationService.Recent(project.ID, recentDonationsLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load donations")
	}

	user := handler.optionalAuthenticatedUser(c)
	isOwner := services.CanModifyProject(user, project)

	return handler.render(c, "project_detail", fiber.Map{
		"Title":        "Crowdfund | " + project.Title,
		"CurrentUser":  user,
		"Flash":        popFlashCookie(c),
		"Project":      project,
		"TotalDonated": total,
		"Donations":    recent,
		"IsOwner":      isOwner,
		"CanDonate":    project.IsActive && !isOwner,
	})
}

func (handler *Handler) ShowMyProjects(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	projects, err := handler.projectService.ListOwned(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load projects")
	}

	return handler.render(c, "my_projects", fiber.Map{
		"Title":       "Crowdfund | My Projects",
		"CurrentUser": user,
		"Flash":       popFlashCookie(c),
		"Projects":    projects,
	})
}
