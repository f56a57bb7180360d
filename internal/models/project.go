package models

import "time"

const DefaultMaxTargetAmount int64 = 10_000_000

type Project struct {
	ID           uint      `gorm:"primaryKey"`
	OwnerID      uint      `gorm:"not null;index"`
	Title        string    `gorm:"size:200;not null"`
	Details      string    `gorm:"not null"`
	TargetAmount int64     `gorm:"not null"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      time.Time `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}
