package services

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/crowdconsole/crowdfund/internal/db"
	"github.com/crowdconsole/crowdfund/internal/models"
)

func openServiceTestDatabase(t *testing.T) (*gorm.DB, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "crowdfund-test.db")
	database, err := db.OpenSQLite(databasePath)
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
	return database, db.NewRepositories(database)
}

func storedUser(t *testing.T, database *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "unused",
		FirstName:    "Stored",
		LastName:     "User",
		MobilePhone:  "01012345678",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("store user: %v", err)
	}
	return &user
}

func validProjectInput(now time.Time) ProjectInput {
	return ProjectInput{
		Title:        "Community Garden",
		Details:      "Raised beds for the neighbourhood.",
		TargetAmount: 5000,
		StartDate:    now,
		EndDate:      now.AddDate(0, 0, 30),
	}
}
