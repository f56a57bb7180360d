package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crowdconsole/crowdfund/internal/services"
)

func parseBoolValue(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}

func parseProjectID(c *fiber.Ctx) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

// parseProjectForm turns the submitted form into a ProjectInput. The
// second return value is a user-facing parse error, empty when the form
// is syntactically valid; semantic validation happens in the service.
func (handler *Handler) parseProjectForm(c *fiber.Ctx) (services.ProjectInput, string) {
	form := projectFormInput{}
	if err := c.BodyParser(&form); err != nil {
		return services.ProjectInput{}, "Invalid input."
	}

	targetRaw := strings.TrimSpace(form.TargetAmount)
	target, err := strconv.ParseInt(targetRaw, 10, 64)
	if targetRaw == "" || err != nil {
		return services.ProjectInput{}, "Target amount must be a whole number."
	}

	startDate, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(form.StartDate), handler.location)
	if err != nil {
		return services.ProjectInput{}, "Enter valid start and end dates (YYYY-MM-DD)."
	}
	endDate, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(form.EndDate), handler.location)
	if err != nil {
		return services.ProjectInput{}, "Enter valid start and end dates (YYYY-MM-DD)."
	}

	return services.ProjectInput{
		Title:        strings.TrimSpace(form.Title),
		Details:      strings.TrimSpace(form.Details),
		TargetAmount: target,
		StartDate:    startDate,
		EndDate:      endDate,
	}, ""
}

func (handler *Handler) parseDonationForm(c *fiber.Ctx) (services.DonationInput, string) {
	form := donationFormInput{}
	if err := c.BodyParser(&form); err != nil {
		return services.DonationInput{}, "Invalid input."
	}

	amountRaw := strings.TrimSpace(form.Amount)
	amount, err := strconv.ParseInt(amountRaw, 10, 64)
	if amountRaw == "" || err != nil {
		return services.DonationInput{}, "Enter a valid donation amount."
	}

	return services.DonationInput{
		Amount:     amount,
		DonorName:  strings.TrimSpace(form.DonorName),
		DonorEmail: strings.TrimSpace(form.DonorEmail),
	}, ""
}

// parseDateQuery is fail-closed: an unparsable date filter reports ok =
// false and the caller must return an empty result set, not the
// unfiltered one.
func parseDateQuery(raw string, location *time.Location) (*time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, true
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return nil, false
	}
	day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, location)
	return &day, true
}
