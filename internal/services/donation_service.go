package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/crowdconsole/crowdfund/internal/models"
	"gorm.io/gorm"
)

var ErrSelfDonation = errors.New("owners may not donate to their own project")

type DonationStore interface {
	Create(donation *models.Donation) error
	TotalForProject(projectID uint) (int64, error)
	RecentForProject(projectID uint, limit int) ([]models.Donation, error)
}

type DonationProjectLookup interface {
	FindByID(projectID uint) (models.Project, error)
}

type DonationService struct {
	donations DonationStore
	projects  DonationProjectLookup
}

func NewDonationService(donations DonationStore, projects DonationProjectLookup) *DonationService {
	return &DonationService{donations: donations, projects: projects}
}

type DonationInput struct {
	Amount     int64
	DonorName  string
	DonorEmail string
}

// Donate records a contribution against an active project. donor is nil
// for anonymous submissions; an authenticated donor is attached to the
// row and backfills the display name/email when the form left them blank.
func (service *DonationService) Donate(projectID uint, donor *models.User, input DonationInput, now time.Time) (*models.Donation, error) {
	project, err := service.projects.FindByID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if !project.IsActive {
		return nil, ErrProjectNotFound
	}

	if donor != nil && donor.ID == project.OwnerID {
		return nil, ErrSelfDonation
	}

	if input.Amount < models.MinDonationAmount || input.Amount > models.MaxDonationAmount {
		return nil, fieldError("amount", fmt.Sprintf("Donation amount must be between %d and %d.", models.MinDonationAmount, models.MaxDonationAmount))
	}

	donorName := strings.TrimSpace(input.DonorName)
	donorEmail := strings.ToLower(strings.TrimSpace(input.DonorEmail))
	if donorEmail != "" {
		if _, err := mail.ParseAddress(donorEmail); err != nil {
			return nil, fieldError("donor_email", "Enter a valid email address.")
		}
	}

	donation := models.Donation{
		ProjectID:  project.ID,
		DonorName:  donorName,
		DonorEmail: donorEmail,
		Amount:     input.Amount,
		CreatedAt:  now,
	}
	if donor != nil {
		donorID := donor.ID
		donation.UserID = &donorID
		if donation.DonorName == "" {
			donation.DonorName = donor.FullName()
		}
		if donation.DonorEmail == "" {
			donation.DonorEmail = donor.Email
		}
	}

	if err := service.donations.Create(&donation); err != nil {
		return nil, err
	}
	return &donation, nil
}

func (service *DonationService) TotalDonated(projectID uint) (int64, error) {
	return service.donations.TotalForProject(projectID)
}

func (service *DonationService) Recent(projectID uint, limit int) ([]models.Donation, error) {
	if limit <= 0 {
		limit = 10
	}
	return service.donations.RecentForProject(projectID, limit)
}
