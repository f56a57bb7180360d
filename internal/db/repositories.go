package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Projects  *ProjectRepository
	Donations *DonationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Projects:  NewProjectRepository(database),
		Donations: NewDonationRepository(database),
	}
}
