package professional

import (
	"errors"
	"time"

	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	MobileNumber    string `json:"mobile_number"`
	Gender          string `json:"gender"`
	Age             int    `json:"age"`
	Designation     string `json:"designation"`
	Department      string `json:"department"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experience_years"`
}

type ProfessionalResponse struct {
	ID                   uint   `json:"id"`
	Name                 string `json:"name"`
	Username             string `json:"username"`
	MobileNumber         string `json:"mobile_number"`
	Gender               string `json:"gender"`
	Age                  int    `json:"age"`
	Designation          string `json:"designation"`
	Department           string `json:"department"`
	Specialization       string `json:"specialization"`
	ExperienceYears      int    `json:"experience_years"`
	CreatedAt            string `json:"created_at"`
	TotalTrainings       int    `json:"total_trainings"`
	TotalTraineesTrained int    `json:"total_trainees_trained"`
}

func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" || body.Username == "" || body.MobileNumber == "" || body.Gender == "" || body.Age == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Name, username, mobile number, gender and age are required")
		}

		var existing models.User
		err := database.DB.Select("id").Where("username = ?", body.Username).First(&existing).Error
		if err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Username already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		// Initial credential convention: the password is the mobile number.
		user := models.User{
			Name:            body.Name,
			Username:        body.Username,
			Password:        body.MobileNumber,
			MobileNumber:    body.MobileNumber,
			Gender:          body.Gender,
			Age:             body.Age,
			Role:            models.RoleProfessional,
			Designation:     body.Designation,
			Department:      body.Department,
			Specialization:  body.Specialization,
			ExperienceYears: body.ExperienceYears,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Professional registered successfully",
		})
	}
}

type professionalRow struct {
	ID                   uint
	Name                 string
	Username             string
	MobileNumber         string
	Gender               string
	Age                  int
	Designation          string
	Department           string
	Specialization       string
	ExperienceYears      int
	CreatedAt            time.Time
	TotalTrainings       int
	TotalTraineesTrained int
}

const listProfessionalsQuery = `
	SELECT u.id, u.name, u.username, u.mobile_number, u.gender, u.age,
	       u.designation, u.department, u.specialization, u.experience_years, u.created_at,
	       COUNT(DISTINCT t.id) AS total_trainings,
	       COUNT(DISTINCT tr.id) AS total_trainees_trained
	FROM users u
	LEFT JOIN trainings t ON u.id = t.conducted_by
	LEFT JOIN trainees tr ON u.id = tr.registered_by
	WHERE u.role = ?
	GROUP BY u.id, u.name, u.username, u.mobile_number, u.gender, u.age,
	         u.designation, u.department, u.specialization, u.experience_years, u.created_at
	ORDER BY u.created_at DESC`

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []professionalRow
		if err := database.DB.Raw(listProfessionalsQuery, models.RoleProfessional).Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		res := make([]ProfessionalResponse, 0, len(rows))
		for _, r := range rows {
			res = append(res, ProfessionalResponse{
				ID:                   r.ID,
				Name:                 r.Name,
				Username:             r.Username,
				MobileNumber:         r.MobileNumber,
				Gender:               r.Gender,
				Age:                  r.Age,
				Designation:          r.Designation,
				Department:           r.Department,
				Specialization:       r.Specialization,
				ExperienceYears:      r.ExperienceYears,
				CreatedAt:            r.CreatedAt.Format("2006-01-02 15:04:05"),
				TotalTrainings:       r.TotalTrainings,
				TotalTraineesTrained: r.TotalTraineesTrained,
			})
		}

		return c.JSON(fiber.Map{
			"success":       true,
			"professionals": res,
		})
	}
}

// lookupRole fetches the role of a user row before a mutation. The
// check and the mutation run as two separate statements; a row removed
// in between simply surfaces as the mutation's own 404.
func lookupRole(id int) (models.UserRole, error) {
	var target models.User
	err := database.DB.Select("role").Where("id = ?", id).First(&target).Error
	if err != nil {
		return "", err
	}
	return target.Role, nil
}

func EditHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}

		role, err := lookupRole(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Professional not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}
		if role == models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Cannot edit admin user")
		}

		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		res := database.DB.Model(&models.User{}).
			Where("id = ? AND role = ?", id, models.RoleProfessional).
			Updates(map[string]interface{}{
				"name":             body.Name,
				"username":         body.Username,
				"mobile_number":    body.MobileNumber,
				"gender":           body.Gender,
				"age":              body.Age,
				"designation":      body.Designation,
				"department":       body.Department,
				"specialization":   body.Specialization,
				"experience_years": body.ExperienceYears,
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Professional not found or could not be updated")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Professional updated successfully",
		})
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
		}

		role, err := lookupRole(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Professional not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}
		if role == models.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Cannot delete admin user")
		}

		res := database.DB.
			Where("id = ? AND role = ?", id, models.RoleProfessional).
			Delete(&models.User{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+res.Error.Error())
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Professional not found or could not be deleted")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Medical professional deleted successfully",
		})
	}
}
