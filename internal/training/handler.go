package training

import (
	"time"

	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/models"

	"github.com/gofiber/fiber/v2"
)

// DurationHours, MaxTrainees and Status are pointers so an absent key
// can be told apart from an explicit zero value.
type TrainingRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	TrainingTopic string   `json:"training_topic"`
	Address       string   `json:"address"`
	Block         string   `json:"block"`
	TrainingDate  string   `json:"training_date"`
	TrainingTime  string   `json:"training_time"`
	DurationHours *float64 `json:"duration_hours"`
	MaxTrainees   *int     `json:"max_trainees"`
	Status        *string  `json:"status"`
	ConductedBy   uint     `json:"conducted_by"`
}

type TrainingResponse struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	TrainingTopic   string  `json:"training_topic"`
	Address         string  `json:"address"`
	Block           string  `json:"block"`
	TrainingDate    string  `json:"training_date"`
	TrainingTime    string  `json:"training_time"`
	DurationHours   float64 `json:"duration_hours"`
	MaxTrainees     int     `json:"max_trainees"`
	Status          string  `json:"status"`
	ConductedBy     uint    `json:"conducted_by"`
	ConductedByName string  `json:"conducted_by_name"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func (b *TrainingRequest) missingRequired(includeConductedBy bool) bool {
	if b.Title == "" || b.TrainingTopic == "" || b.Address == "" ||
		b.Block == "" || b.TrainingDate == "" || b.TrainingTime == "" {
		return true
	}
	return includeConductedBy && b.ConductedBy == 0
}

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TrainingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.missingRequired(true) {
			return fiber.NewError(fiber.StatusBadRequest, "All required fields must be provided")
		}

		trainingDate, err := time.Parse("2006-01-02", body.TrainingDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "training_date must be in YYYY-MM-DD format")
		}

		duration := 1.0
		if body.DurationHours != nil {
			duration = *body.DurationHours
		}
		maxTrainees := 50
		if body.MaxTrainees != nil {
			maxTrainees = *body.MaxTrainees
		}

		t := models.Training{
			Title:         body.Title,
			Description:   body.Description,
			TrainingTopic: body.TrainingTopic,
			Address:       body.Address,
			Block:         body.Block,
			TrainingDate:  trainingDate,
			TrainingTime:  body.TrainingTime,
			DurationHours: duration,
			MaxTrainees:   maxTrainees,
			Status:        models.StatusPlanned,
			ConductedBy:   body.ConductedBy,
		}

		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Training created successfully",
		})
	}
}

type trainingRow struct {
	ID              uint
	Title           string
	Description     string
	TrainingTopic   string
	Address         string
	Block           string
	TrainingDate    time.Time
	TrainingTime    string
	DurationHours   float64
	MaxTrainees     int
	Status          string
	ConductedBy     uint
	ConductedByName string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const listTrainingsQuery = `
	SELECT t.id, t.title, t.description, t.training_topic, t.address, t.block,
	       t.training_date, t.training_time, t.duration_hours, t.max_trainees, t.status,
	       t.conducted_by, t.created_at, t.updated_at, u.name AS conducted_by_name
	FROM trainings t
	JOIN users u ON t.conducted_by = u.id`

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Query("role")
		if role == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Role parameter is required")
		}
		if role != string(models.RoleAdmin) && c.Query("user_id") == "" {
			return fiber.NewError(fiber.StatusBadRequest, "User ID is required for non-admin users")
		}

		var rows []trainingRow
		var err error
		if role == string(models.RoleAdmin) {
			err = database.DB.Raw(listTrainingsQuery + " ORDER BY t.training_date DESC, t.training_time DESC").Scan(&rows).Error
		} else {
			err = database.DB.Raw(listTrainingsQuery+" WHERE t.conducted_by = ? ORDER BY t.training_date DESC, t.training_time DESC", c.QueryInt("user_id")).Scan(&rows).Error
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		res := make([]TrainingResponse, 0, len(rows))
		for _, r := range rows {
			res = append(res, TrainingResponse{
				ID:              r.ID,
				Title:           r.Title,
				Description:     r.Description,
				TrainingTopic:   r.TrainingTopic,
				Address:         r.Address,
				Block:           r.Block,
				TrainingDate:    r.TrainingDate.Format("2006-01-02"),
				TrainingTime:    r.TrainingTime,
				DurationHours:   r.DurationHours,
				MaxTrainees:     r.MaxTrainees,
				Status:          r.Status,
				ConductedBy:     r.ConductedBy,
				ConductedByName: r.ConductedByName,
				CreatedAt:       r.CreatedAt.Format("2006-01-02 15:04:05"),
				UpdatedAt:       r.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(fiber.Map{
			"success":   true,
			"trainings": res,
		})
	}
}

func EditHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}

		var body TrainingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.missingRequired(false) {
			return fiber.NewError(fiber.StatusBadRequest, "All required fields must be provided")
		}

		trainingDate, err := time.Parse("2006-01-02", body.TrainingDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "training_date must be in YYYY-MM-DD format")
		}

		duration := 1.0
		if body.DurationHours != nil {
			duration = *body.DurationHours
		}
		maxTrainees := 50
		if body.MaxTrainees != nil {
			maxTrainees = *body.MaxTrainees
		}
		// Status is overwritten verbatim, there is no transition check.
		status := models.StatusPlanned
		if body.Status != nil {
			status = *body.Status
		}

		res := database.DB.Model(&models.Training{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":          body.Title,
				"description":    body.Description,
				"training_topic": body.TrainingTopic,
				"address":        body.Address,
				"block":          body.Block,
				"training_date":  trainingDate,
				"training_time":  body.TrainingTime,
				"duration_hours": duration,
				"max_trainees":   maxTrainees,
				"status":         status,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Training not found")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Training updated successfully",
		})
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}

		res := database.DB.Delete(&models.Training{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Training not found")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Training deleted successfully",
		})
	}
}
