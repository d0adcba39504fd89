package system

import (
	"time"

	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/models"

	"github.com/gofiber/fiber/v2"
)

func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.Ping(); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "ERROR",
				"message": "Database connection failed",
			})
		}

		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Server and database are running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// userRecord mirrors the raw users row. The password column is included
// on purpose: /api/data is a table viewer and dumps columns as stored.
type userRecord struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Username        string          `json:"username"`
	Password        string          `json:"password"`
	MobileNumber    string          `json:"mobile_number"`
	Gender          string          `json:"gender"`
	Age             int             `json:"age"`
	Role            models.UserRole `json:"role"`
	Designation     string          `json:"designation"`
	Department      string          `json:"department"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
	CreatedAt       string          `json:"created_at"`
}

type traineeRecord struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	MobileNumber     string `json:"mobile_number"`
	Gender           string `json:"gender"`
	Age              int    `json:"age"`
	Department       string `json:"department"`
	Designation      string `json:"designation"`
	Address          string `json:"address"`
	Block            string `json:"block"`
	TrainingDate     string `json:"training_date"`
	CprTraining      bool   `json:"cpr_training"`
	FirstAidKitGiven bool   `json:"first_aid_kit_given"`
	LifeSavingSkills bool   `json:"life_saving_skills"`
	RegisteredBy     uint   `json:"registered_by"`
	CreatedAt        string `json:"created_at"`
}

type trainingRecord struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	TrainingTopic string  `json:"training_topic"`
	Address       string  `json:"address"`
	Block         string  `json:"block"`
	TrainingDate  string  `json:"training_date"`
	TrainingTime  string  `json:"training_time"`
	DurationHours float64 `json:"duration_hours"`
	MaxTrainees   int     `json:"max_trainees"`
	Status        string  `json:"status"`
	ConductedBy   uint    `json:"conducted_by"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// DataHandler dumps all three tables so table structures can be
// inspected from the frontend.
func DataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		var trainees []models.Trainee
		if err := database.DB.Order("created_at DESC").Find(&trainees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		var trainings []models.Training
		if err := database.DB.Order("created_at DESC").Find(&trainings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		userRecords := make([]userRecord, 0, len(users))
		for _, u := range users {
			userRecords = append(userRecords, userRecord{
				ID:              u.ID,
				Name:            u.Name,
				Username:        u.Username,
				Password:        u.Password,
				MobileNumber:    u.MobileNumber,
				Gender:          u.Gender,
				Age:             u.Age,
				Role:            u.Role,
				Designation:     u.Designation,
				Department:      u.Department,
				Specialization:  u.Specialization,
				ExperienceYears: u.ExperienceYears,
				CreatedAt:       u.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		traineeRecords := make([]traineeRecord, 0, len(trainees))
		for _, t := range trainees {
			traineeRecords = append(traineeRecords, traineeRecord{
				ID:               t.ID,
				Name:             t.Name,
				MobileNumber:     t.MobileNumber,
				Gender:           t.Gender,
				Age:              t.Age,
				Department:       t.Department,
				Designation:      t.Designation,
				Address:          t.Address,
				Block:            t.Block,
				TrainingDate:     t.TrainingDate.Format("2006-01-02"),
				CprTraining:      t.CprTraining,
				FirstAidKitGiven: t.FirstAidKitGiven,
				LifeSavingSkills: t.LifeSavingSkills,
				RegisteredBy:     t.RegisteredBy,
				CreatedAt:        t.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		trainingRecords := make([]trainingRecord, 0, len(trainings))
		for _, t := range trainings {
			trainingRecords = append(trainingRecords, trainingRecord{
				ID:            t.ID,
				Title:         t.Title,
				Description:   t.Description,
				TrainingTopic: t.TrainingTopic,
				Address:       t.Address,
				Block:         t.Block,
				TrainingDate:  t.TrainingDate.Format("2006-01-02"),
				TrainingTime:  t.TrainingTime,
				DurationHours: t.DurationHours,
				MaxTrainees:   t.MaxTrainees,
				Status:        t.Status,
				ConductedBy:   t.ConductedBy,
				CreatedAt:     t.CreatedAt.Format("2006-01-02 15:04:05"),
				UpdatedAt:     t.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"users":     userRecords,
				"trainees":  traineeRecords,
				"trainings": trainingRecords,
			},
			"message": "All table data retrieved successfully",
		})
	}
}
