package auth

import (
	"errors"
	"log"

	"github.com/garvv29/Suraksha/internal/config"
	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserProfile is the login payload. The password column never leaves
// the handler.
type UserProfile struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	Username        string          `json:"username"`
	MobileNumber    string          `json:"mobile_number"`
	Gender          string          `json:"gender"`
	Age             int             `json:"age"`
	Role            models.UserRole `json:"role"`
	Designation     string          `json:"designation"`
	Department      string          `json:"department"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
}

func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Username == "" || body.Password == "" || body.Role == "" {
			return fiber.NewError(fiber.StatusBadRequest, "All fields are required")
		}

		var user models.User
		err := database.DB.
			Where("username = ? AND password = ? AND role = ?", body.Username, body.Password, body.Role).
			First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// One generic message for every mismatch so a caller cannot
			// probe which of the three fields was wrong.
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error: "+err.Error())
		}

		token, err := GenerateToken(cfg.SecretKey, &user)
		if err != nil {
			log.Println("Token generation failed:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create session token")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"token":   token,
			"user": UserProfile{
				ID:              user.ID,
				Name:            user.Name,
				Username:        user.Username,
				MobileNumber:    user.MobileNumber,
				Gender:          user.Gender,
				Age:             user.Age,
				Role:            user.Role,
				Designation:     user.Designation,
				Department:      user.Department,
				Specialization:  user.Specialization,
				ExperienceYears: user.ExperienceYears,
			},
		})
	}
}
