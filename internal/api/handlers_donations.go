package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crowdconsole/crowdfund/internal/services"
)

// Donate accepts contributions from authenticated users and anonymous
// visitors alike; AuthRequired is deliberately not on this route.
func (handler *Handler) Donate(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return handler.NotFound(c)
	}

	detailPath := projectDetailPath(projectID)
	input, parseError := handler.parseDonationForm(c)
	if parseError != "" {
		return handler.respondDonationError(c, detailPath, fiber.StatusBadRequest, parseError)
	}

	donor := handler.optionalAuthenticatedUser(c)
	donation, err := handler.donationService.Donate(projectID, donor, input, time.Now().In(handler.location))
	switch {
	case err == nil:
	case errors.Is(err, services.ErrProjectNotFound):
		return handler.NotFound(c)
	case errors.Is(err, services.ErrSelfDonation):
		return handler.respondDonationError(c, detailPath, fiber.StatusForbidden, formErrorMessage(err))
	default:
		message := formErrorMessage(err)
		if message == "" {
			return apiError(c, fiber.StatusInternalServerError, "failed to record donation")
		}
		return handler.respondDonationError(c, detailPath, fiber.StatusBadRequest, message)
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "donation_id": donation.ID})
	}
	setFlashCookie(c, FlashPayload{Success: "Thank you for your donation!"})
	return c.Redirect(detailPath, fiber.StatusSeeOther)
}

func (handler *Handler) respondDonationError(c *fiber.Ctx, detailPath string, status int, message string) error {
	if acceptsJSON(c) {
		return apiError(c, status, message)
	}
	setFlashCookie(c, FlashPayload{FormError: message})
	return c.Redirect(detailPath, fiber.StatusSeeOther)
}
