package models

import "time"

// Trainee is a person who received training, registered by a user.
// Referential integrity on RegisteredBy is the database's job, the
// handlers never verify it themselves.
type Trainee struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"size:100;not null"`
	MobileNumber     string    `gorm:"size:20"`
	Gender           string    `gorm:"size:10;not null"`
	Age              int       `gorm:"not null"`
	Department       string    `gorm:"size:100;not null"`
	Designation      string    `gorm:"size:100"`
	Address          string    `gorm:"size:255;not null"`
	Block            string    `gorm:"size:100;not null"`
	TrainingDate     time.Time `gorm:"type:date;not null"`
	CprTraining      bool      `gorm:"default:false"`
	FirstAidKitGiven bool      `gorm:"default:false"`
	LifeSavingSkills bool      `gorm:"default:false"`
	RegisteredBy     uint      `gorm:"not null"`
	Registrar        *User     `gorm:"foreignKey:RegisteredBy"`
	CreatedAt        time.Time
}
