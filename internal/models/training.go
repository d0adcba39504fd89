package models

import "time"

// StatusPlanned is the initial status of a training session. Edits
// overwrite the status verbatim, there is no transition validation.
const StatusPlanned = "Planned"

// Training is a scheduled training session conducted by a professional.
// TrainingTime is kept as the raw "HH:MM:SS" string the client sent.
type Training struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"size:200;not null"`
	Description   string    `gorm:"type:text"`
	TrainingTopic string    `gorm:"size:200;not null"`
	Address       string    `gorm:"size:255;not null"`
	Block         string    `gorm:"size:100;not null"`
	TrainingDate  time.Time `gorm:"type:date;not null"`
	TrainingTime  string    `gorm:"size:8;not null"`
	DurationHours float64
	MaxTrainees   int
	Status        string `gorm:"size:20"`
	ConductedBy   uint      `gorm:"not null"`
	Conductor     *User     `gorm:"foreignKey:ConductedBy"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
