package db

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/crowdconsole/crowdfund/internal/models"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "crowdfund-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func seedUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "unused",
		FirstName:    "Seed",
		LastName:     "User",
		MobilePhone:  "01012345678",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedProject(t *testing.T, database *gorm.DB, ownerID uint, title string, start time.Time, end time.Time, active bool) models.Project {
	t.Helper()

	project := models.Project{
		OwnerID:      ownerID,
		Title:        title,
		Details:      "details for " + title,
		TargetAmount: 1000,
		StartDate:    start,
		EndDate:      end,
		IsActive:     active,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}
