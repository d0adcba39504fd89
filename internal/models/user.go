package models

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleProfessional UserRole = "professional"
)

// User is an admin or a medical professional. Passwords are stored as
// given; a freshly registered professional logs in with their mobile
// number. Admin rows are seeded directly in the database and cannot be
// created, edited or deleted through the API.
type User struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:100;not null"`
	Username        string `gorm:"size:100;uniqueIndex;not null"`
	Password        string `gorm:"size:255;not null"`
	MobileNumber    string `gorm:"size:20"`
	Gender          string `gorm:"size:10"`
	Age             int
	Role            UserRole `gorm:"size:20;not null"`
	Designation     string   `gorm:"size:100"`
	Department      string   `gorm:"size:100"`
	Specialization  string   `gorm:"size:100"`
	ExperienceYears int
	CreatedAt       time.Time
}
