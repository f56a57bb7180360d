package api

import (
	"gorm.io/gorm"

	"github.com/crowdconsole/crowdfund/internal/db"
	"github.com/crowdconsole/crowdfund/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, handler.activationRequired)
	handler.projectService = services.NewProjectService(handler.repositories.Projects, handler.maxTargetAmount, handler.location)
	handler.donationService = services.NewDonationService(handler.repositories.Donations, handler.repositories.Projects)
	handler.mailService = services.NewMailService(nil)
	return handler
}
