package db

import (
	"strings"
	"time"

	"github.com/crowdconsole/crowdfund/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{database: database}
}

func (repo *ProjectRepository) FindByID(projectID uint) (models.Project, error) {
	var project models.Project
	if err := repo.database.First(&project, projectID).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (repo *ProjectRepository) Create(project *models.Project) error {
	return repo.database.Create(project).Error
}

func (repo *ProjectRepository) UpdateByID(projectID uint, updates map[string]any) error {
	return repo.database.Model(&models.Project{}).Where("id = ?", projectID).Updates(updates).Error
}

func (repo *ProjectRepository) DeleteByID(projectID uint) error {
	return repo.database.Delete(&models.Project{}, projectID).Error
}

// ListActive returns is_active projects newest-created first. titleQuery
// is a case-insensitive substring match; activeOn, when set, must fall
// inside the project's start/end window.
func (repo *ProjectRepository) ListActive(titleQuery string, activeOn *time.Time) ([]models.Project, error) {
	query := repo.database.Where("is_active = ?", true)

	// sqlite LIKE is case-insensitive for ASCII, matching the
	// case-insensitive substring contract of the search box.
	if trimmed := strings.TrimSpace(titleQuery); trimmed != "" {
		query = query.Where(`title LIKE ? ESCAPE '\'`, "%"+escapeLike(trimmed)+"%")
	}
	if activeOn != nil {
		query = query.Where("start_date <= ? AND end_date >= ?", *activeOn, *activeOn)
	}

	projects := make([]models.Project, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *ProjectRepository) ListByOwner(ownerID uint) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := repo.database.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
