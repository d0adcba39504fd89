package trainee

import (
	"time"

	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TraineeRequest struct {
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
}

type TraineeResponse struct {
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
	RegisteredByName string `json:"registered_by_name"`
	CreatedAt        string `json:"created_at"`
}

func (b *TraineeRequest) missingRequired(includeRegisteredBy bool) bool {
	if b.Name == "" || b.Gender == "" || b.Age == 0 || b.Department == "" ||
		b.Address == "" || b.Block == "" || b.TrainingDate == "" {
		return true
	}
	return includeRegisteredBy && b.RegisteredBy == 0
}

func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TraineeRequest
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

		t := models.Trainee{
			Name:             body.Name,
			MobileNumber:     body.MobileNumber,
			Gender:           body.Gender,
			Age:              body.Age,
			Department:       body.Department,
			Designation:      body.Designation,
			Address:          body.Address,
			Block:            body.Block,
			TrainingDate:     trainingDate,
			CprTraining:      body.CprTraining,
			FirstAidKitGiven: body.FirstAidKitGiven,
			LifeSavingSkills: body.LifeSavingSkills,
			RegisteredBy:     body.RegisteredBy,
		}

		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Trainee registered successfully",
		})
	}
}

type traineeRow struct {
	ID               uint
	Name             string
	MobileNumber     string
	Gender           string
	Age              int
	Department       string
	Designation      string
	Address          string
	Block            string
	TrainingDate     time.Time
	CprTraining      bool
	FirstAidKitGiven bool
	LifeSavingSkills bool
	RegisteredBy     uint
	RegisteredByName string
	CreatedAt        time.Time
}

const listTraineesQuery = `
	SELECT t.id, t.name, t.mobile_number, t.gender, t.age, t.department, t.designation,
	       t.address, t.block, t.training_date, t.cpr_training, t.first_aid_kit_given,
	       t.life_saving_skills, t.registered_by, t.created_at, u.name AS registered_by_name
	FROM trainees t
	JOIN users u ON t.registered_by = u.id`

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Query("role")
		userID := c.QueryInt("user_id")

		var rows []traineeRow
		var err error
		if role == string(models.RoleAdmin) {
			err = database.DB.Raw(listTraineesQuery + " ORDER BY t.created_at DESC").Scan(&rows).Error
		} else {
			err = database.DB.Raw(listTraineesQuery+" WHERE t.registered_by = ? ORDER BY t.created_at DESC", userID).Scan(&rows).Error
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		res := make([]TraineeResponse, 0, len(rows))
		for _, r := range rows {
			res = append(res, TraineeResponse{
				ID:               r.ID,
				Name:             r.Name,
				MobileNumber:     r.MobileNumber,
				Gender:           r.Gender,
				Age:              r.Age,
				Department:       r.Department,
				Designation:      r.Designation,
				Address:          r.Address,
				Block:            r.Block,
				TrainingDate:     r.TrainingDate.Format("2006-01-02"),
				CprTraining:      r.CprTraining,
				FirstAidKitGiven: r.FirstAidKitGiven,
				LifeSavingSkills: r.LifeSavingSkills,
				RegisteredBy:     r.RegisteredBy,
				RegisteredByName: r.RegisteredByName,
				CreatedAt:        r.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"trainees": res,
		})
	}
}

func EditHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}

		var body TraineeRequest
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

		res := database.DB.Model(&models.Trainee{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"name":                body.Name,
				"mobile_number":       body.MobileNumber,
				"gender":              body.Gender,
				"age":                 body.Age,
				"department":          body.Department,
				"designation":         body.Designation,
				"address":             body.Address,
				"block":               body.Block,
				"training_date":       trainingDate,
				"cpr_training":        body.CprTraining,
				"first_aid_kit_given": body.FirstAidKitGiven,
				"life_saving_skills":  body.LifeSavingSkills,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Trainee not found")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Trainee updated successfully",
		})
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}

		res := database.DB.Delete(&models.Trainee{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Trainee not found")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Trainee deleted successfully",
		})
	}
}
