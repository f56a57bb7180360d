package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crowdconsole/crowdfund/internal/models"
)

const (
	authCookieName  = "crowdfund_auth"
	flashCookieName = "crowdfund_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
