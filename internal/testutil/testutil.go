package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/garvv29/Suraksha/internal/config"
	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/models"
	"github.com/garvv29/Suraksha/internal/server"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB swaps the package-level handle for a fresh in-memory SQLite
// database with the schema applied. A shared-cache named database keeps
// it alive across the pooled connections of a single test; the previous
// handle is restored on cleanup.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
		database.DB = prev
	})

	return db
}

// NewApp returns the fully routed application backed by an in-memory
// database, ready to be driven with app.Test().
func NewApp(t *testing.T) *fiber.App {
	t.Helper()
	SetupDB(t)
	cfg := &config.Config{
		HTTPPort:    "0",
		SecretKey:   "test-secret-key",
		CORSOrigins: "*",
	}
	return server.New(cfg)
}

// DoJSON drives the app with a JSON request and returns the response.
func DoJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

// DecodeBody unmarshals a JSON response body into a generic map.
func DecodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

// SeedAdmin inserts an admin user and returns it.
func SeedAdmin(t *testing.T) models.User {
	t.Helper()
	u := models.User{
		Name:     "Admin User",
		Username: "admin",
		Password: "admin123",
		Role:     models.RoleAdmin,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return u
}

// SeedProfessional inserts a professional whose password follows the
// mobile-number convention and returns it.
func SeedProfessional(t *testing.T, username, mobile string) models.User {
	t.Helper()
	u := models.User{
		Name:            "Dr. " + username,
		Username:        username,
		Password:        mobile,
		MobileNumber:    mobile,
		Gender:          "Male",
		Age:             35,
		Role:            models.RoleProfessional,
		Designation:     "Senior Doctor",
		Department:      "Cardiology",
		Specialization:  "CPR",
		ExperienceYears: 10,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		t.Fatalf("seed professional: %v", err)
	}
	return u
}

// SeedTrainee inserts a trainee registered by the given user.
func SeedTrainee(t *testing.T, name string, registeredBy uint) models.Trainee {
	t.Helper()
	tr := models.Trainee{
		Name:         name,
		MobileNumber: "9000000000",
		Gender:       "Female",
		Age:          28,
		Department:   "Housekeeping",
		Address:      "Sector 4",
		Block:        "Block A",
		TrainingDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		RegisteredBy: registeredBy,
	}
	if err := database.DB.Create(&tr).Error; err != nil {
		t.Fatalf("seed trainee: %v", err)
	}
	return tr
}

// SeedTraining inserts a training session conducted by the given user.
func SeedTraining(t *testing.T, title string, conductedBy uint, date time.Time) models.Training {
	t.Helper()
	tr := models.Training{
		Title:         title,
		TrainingTopic: "First Aid",
		Address:       "Community Hall",
		Block:         "Block B",
		TrainingDate:  date,
		TrainingTime:  "10:00:00",
		DurationHours: 2,
		MaxTrainees:   40,
		Status:        models.StatusPlanned,
		ConductedBy:   conductedBy,
	}
	if err := database.DB.Create(&tr).Error; err != nil {
		t.Fatalf("seed training: %v", err)
	}
	return tr
}
