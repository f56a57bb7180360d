package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crowdconsole/crowdfund/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotProjectOwner = errors.New("not the project owner")
)

type ProjectStore interface {
	FindByID(projectID uint) (models.Project, error)
	Create(project *models.Project) error
	UpdateByID(projectID uint, updates map[string]any) error
	DeleteByID(projectID uint) error
	ListActive(titleQuery string, activeOn *time.Time) ([]models.Project, error)
	ListByOwner(ownerID uint) ([]models.Project, error)
}

type ProjectService struct {
	projects        ProjectStore
	maxTargetAmount int64
	location        *time.Location
}

func NewProjectService(projects ProjectStore, maxTargetAmount int64, location *time.Location) *ProjectService {
	if maxTargetAmount <= 0 {
		maxTargetAmount = models.DefaultMaxTargetAmount
	}
	if location == nil {
		location = time.Local
	}
	return &ProjectService{projects: projects, maxTargetAmount: maxTargetAmount, location: location}
}

// CanModifyProject is the single ownership capability check: only the
// user who created a project may edit or delete it.
func CanModifyProject(caller *models.User, project models.Project) bool {
	return caller != nil && caller.ID == project.OwnerID
}

type ProjectInput struct {
	Title        string
	Details      string
	TargetAmount int64
	StartDate    time.Time
	EndDate      time.Time
}

func (service *ProjectService) MaxTargetAmount() int64 {
	return service.maxTargetAmount
}

func (service *ProjectService) validateInput(input ProjectInput, now time.Time) error {
	if strings.TrimSpace(input.Title) == "" {
		return fieldError("title", "Title is required.")
	}
	if strings.TrimSpace(input.Details) == "" {
		return fieldError("details", "Details are required.")
	}
	if input.TargetAmount < 1 || input.TargetAmount > service.maxTargetAmount {
		return fieldError("target_amount", fmt.Sprintf("Target amount must be between 1 and %d.", service.maxTargetAmount))
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return fieldError("start_date", "Start and end dates are required.")
	}
	if input.StartDate.After(input.EndDate) {
		return fieldError("start_date", "Start date must be before or equal to end date.")
	}
	if input.EndDate.Before(dateAt(now, service.location)) {
		return fieldError("end_date", "End date cannot be in the past.")
	}
	return nil
}

// Create persists a new project. The owner always comes from the
// authenticated caller, never from client input.
func (service *ProjectService) Create(owner *models.User, input ProjectInput, now time.Time) (*models.Project, error) {
	if owner == nil {
		return nil, ErrNotProjectOwner
	}
	if err := service.validateInput(input, now); err != nil {
		return nil, err
	}

	project := models.Project{
		OwnerID:      owner.ID,
		Title:        strings.TrimSpace(input.Title),
		Details:      strings.TrimSpace(input.Details),
		TargetAmount: input.TargetAmount,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := service.projects.Create(&project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update re-runs every invariant on the merged result before writing.
// Concurrent owner edits are last-write-wins.
func (service *ProjectService) Update(caller *models.User, projectID uint, input ProjectInput, now time.Time) (*models.Project, error) {
	project, err := service.Get(projectID)
	if err != nil {
		return nil, err
	}
	if !CanModifyProject(caller, project) {
		return nil, ErrNotProjectOwner
	}
	if err := service.validateInput(input, now); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"title":         strings.TrimSpace(input.Title),
		"details":       strings.TrimSpace(input.Details),
		"target_amount": input.TargetAmount,
		"start_date":    input.StartDate,
		"end_date":      input.EndDate,
		"updated_at":    now,
	}
	if err := service.projects.UpdateByID(project.ID, updates); err != nil {
		return nil, err
	}
	return service.getPtr(projectID)
}

func (service *ProjectService) Delete(caller *models.User, projectID uint) error {
	project, err := service.Get(projectID)
	if err != nil {
		return err
	}
	if !CanModifyProject(caller, project) {
		return ErrNotProjectOwner
	}
	return service.projects.DeleteByID(project.ID)
}

func (service *ProjectService) Get(projectID uint) (models.Project, error) {
	project, err := service.projects.FindByID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (service *ProjectService) getPtr(projectID uint) (*models.Project, error) {
	project, err := service.Get(projectID)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (service *ProjectService) ListActive(titleQuery string, activeOn *time.Time) ([]models.Project, error) {
	return service.projects.ListActive(titleQuery, activeOn)
}

func (service *ProjectService) ListOwned(ownerID uint) ([]models.Project, error) {
	return service.projects.ListByOwner(ownerID)
}

func dateAt(value time.Time, location *time.Location) time.Time {
	local := value.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
}
