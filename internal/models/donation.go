package models

import "time"

const (
	MinDonationAmount int64 = 1
	MaxDonationAmount int64 = 1_000_000
)

// Donation is append-only: rows are never edited or deleted, and project
// totals are summed from them on every read.
type Donation struct {
	ID         uint  `gorm:"primaryKey"`
	ProjectID  uint  `gorm:"not null;index"`
	UserID     *uint `gorm:"index"`
	DonorName  string
	DonorEmail string
	Amount     int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}
