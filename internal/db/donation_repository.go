package db

import (
	"github.com/crowdconsole/crowdfund/internal/models"
	"gorm.io/gorm"
)

type DonationRepository struct {
	database *gorm.DB
}

func NewDonationRepository(database *gorm.DB) *DonationRepository {
	return &DonationRepository{database: database}
}

func (repo *DonationRepository) Create(donation *models.Donation) error {
	return repo.database.Create(donation).Error
}

// TotalForProject sums persisted amounts on every call. Donations are
// append-only and cheap to sum at this scale, so nothing is cached.
func (repo *DonationRepository) TotalForProject(projectID uint) (int64, error) {
	var total int64
	if err := repo.database.Model(&models.Donation{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (repo *DonationRepository) RecentForProject(projectID uint, limit int) ([]models.Donation, error) {
	donations := make([]models.Donation, 0)
	if err := repo.database.
		Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
