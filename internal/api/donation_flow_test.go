package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/crowdconsole/crowdfund/internal/models"
)

func donationForm(amount string) url.Values {
	return url.Values{"amount": {amount}}
}

func donatePath(projectID uint) string {
	return fmt.Sprintf("/projects/%d/donate", projectID)
}

func TestDonationFlowAccumulatesTotal(t *testing.T) {
	app, database, handler := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", true)
	donor := createTestUser(t, database, "donor@example.com", "StrongPass1", true)
	donorCookie := loginTestUser(t, app, donor.Email, "StrongPass1")

	today := time.Now().UTC()
	project := createTestProject(t, database, owner.ID, "Community Garden", today, today.AddDate(0, 0, 30), true)

	response := postFormJSON(t, app, donatePath(project.ID), donationForm("500"), donorCookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	response.Body.Close()

	total, err := handler.donationService.TotalDonated(project.ID)
	if err != nil {
		t.Fatalf("total donated: %v", err)
	}
	if total != 500 {
		t.Fatalf("expected total 500 after first donation, got %d", total)
	}

	response = postFormJSON(t, app, donatePath(project.ID), donationForm("500"), donorCookie)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	response.Body.Close()

	total, err = handler.donationService.TotalDonated(project.ID)
	if err != nil {
		t.Fatalf("total donated: %v", err)
	}
	if total != 1000 {
		t.Fatalf("expected total 1000 after second donation, got %d", total)
	}

	detail := getPage(t, app, projectDetailPath(project.ID))
	defer detail.Body.Close()
	if body := readBody(t, detail); !strings.Contains(body, "1000 EGP") {
		t.Fatal("expected computed total on the detail page")
	}
}

func TestOwnerCannotDonateToOwnProject(t *testing.T) {
	app, database, handler := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", true)
	ownerCookie := loginTestUser(t, app, owner.Email, "StrongPass1")

	today := time.Now().UTC()
	project := createTestProject(t, database, owner.ID, "Community Garden", today, today.AddDate(0, 0, 30), true)

	response := postFormJSON(t, app, donatePath(project.ID), donationForm("100"), ownerCookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", response.StatusCode)
	}

	total, err := handler.donationService.TotalDonated(project.ID)
	if err != nil {
		t.Fatalf("total donated: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected total unchanged at 0, got %d", total)
	}
}

func TestDonationAmountBounds(t *testing.T) {
	app, database, _ := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", true)
	donor := createTestUser(t, database, "donor@example.com", "StrongPass1", true)
	donorCookie := loginTestUser(t, app, donor.Email, "StrongPass1")

	today := time.Now().UTC()
	project := createTestProject(t, database, owner.ID, "Community Garden", today, today.AddDate(0, 0, 30), true)

	for _, amount := range []string{"0", "1000001"} {
		response := postFormJSON(t, app, donatePath(project.ID), donationForm(amount), donorCookie)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected status 400 for amount %s, got %d", amount, response.StatusCode)
		}
		if message := readAPIError(t, response.Body); !strings.Contains(message, "between 1 and 1000000") {
			t.Fatalf("unexpected error message %q", message)
		}
		response.Body.Close()
	}

	for _, amount := range []string{"1", "1000000"} {
		response := postFormJSON(t, app, donatePath(project.ID), donationForm(amount), donorCookie)
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("expected status 201 for amount %s, got %d", amount, response.StatusCode)
		}
		response.Body.Close()
	}
}

func TestAnonymousDonationHasNoUser(t *testing.T) {
	app, database, _ := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", true)

	today := time.Now().UTC()
	project := createTestProject(t, database, owner.ID, "Community Garden", today, today.AddDate(0, 0, 30), true)

	form := donationForm("250")
	form.Set("donor_name", "Well Wisher")
	form.Set("donor_email", "wisher@example.com")

	response := postForm(t, app, donatePath(project.ID), form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != projectDetailPath(project.ID) {
		t.Fatalf("expected redirect back to the project, got %q", location)
	}

	var donation models.Donation
	if err := database.Where("project_id = ?", project.ID).First(&donation).Error; err != nil {
		t.Fatalf("load donation: %v", err)
	}
	if donation.UserID != nil {
		t.Fatal("anonymous donation must not be attached to a user")
	}
	if donation.DonorName != "Well Wisher" || donation.DonorEmail != "wisher@example.com" {
		t.Fatalf("unexpected donor identity %q <%s>", donation.DonorName, donation.DonorEmail)
	}
}

func TestAuthenticatedDonationBackfillsDonorIdentity(t *testing.T) {
	app, database, _ := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", true)
	donor := createTestUser(t, database, "donor@example.com", "StrongPass1", true)
	donorCookie := loginTestUser(t, app, donor.Email, "StrongPass1")

	today := time.Now().UTC()
	project := createTestProject(t, database, owner.ID, "Community Garden", today, today.AddDate(0, 0, 30), true)

	response := postForm(t, app, donatePath(project.ID), donationForm("300"), donorCookie)
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}

	var donation models.Donation
	if err := database.Where("project_id = ?", project.ID).First(&donation).Error; err != nil {
		t.Fatalf("load donation: %v", err)
	}
	if donation.UserID == nil || *donation.UserID != donor.ID {
		t.Fatal("expected donation attached to the authenticated donor")
	}
	if donation.DonorName != donor.FullName() {
		t.Fatalf("expected backfilled donor name %q, got %q", donor.FullName(), donation.DonorName)
	}
	if donation.DonorEmail != donor.Email {
		t.Fatalf("expected backfilled donor email %q, got %q", donor.Email, donation.DonorEmail)
	}
}

func TestDonationToInactiveProjectIsNotFound(t *testing.T) {
	app, database, handler := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", true)

	today := time.Now().UTC()
	project := createTestProject(t, database, owner.ID, "Closed Campaign", today, today.AddDate(0, 0, 30), false)

	response := postFormJSON(t, app, donatePath(project.ID), donationForm("100"))
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}

	total, err := handler.donationService.TotalDonated(project.ID)
	if err != nil {
		t.Fatalf("total donated: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no donations recorded, got total %d", total)
	}
}

func TestDonationRejectsMalformedDonorEmail(t *testing.T) {
	app, database, _ := newTestApp(t)
	owner := createTestUser(t, database, "owner@example.com", "StrongPass1", true)

	today := time.Now().UTC()
	project := createTestProject(t, database, owner.ID, "Community Garden", today, today.AddDate(0, 0, 30), true)

	form := donationForm("100")
	form.Set("donor_email", "not-an-email")

	response := postFormJSON(t, app, donatePath(project.ID), form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	if message := readAPIError(t, response.Body); !strings.Contains(message, "valid email") {
		t.Fatalf("unexpected error message %q", message)
	}
}
