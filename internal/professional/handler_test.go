package professional_test

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/garvv29/Suraksha/internal/database"
	"github.com/garvv29/Suraksha/internal/models"
	"github.com/garvv29/Suraksha/internal/testutil"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func userCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := database.DB.Model(&models.User{}).Count(&n).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	return n
}

func TestRegisterProfessionalAndLoginWithMobileNumber(t *testing.T) {
	app := testutil.NewApp(t)

	resp := testutil.DoJSON(t, app, http.MethodPost, "/api/register_professional", map[string]any{
		"name":             "Dr. Sharma",
		"username":         "drsharma",
		"mobile_number":    "9811112222",
		"gender":           "Female",
		"age":              42,
		"designation":      "Consultant",
		"department":       "Emergency",
		"specialization":   "Trauma",
		"experience_years": 15,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := testutil.DecodeBody(t, resp)
	if body["message"] != "Professional registered successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	// The mobile number doubles as the initial password.
	login := testutil.DoJSON(t, app, http.MethodPost, "/api/login", map[string]any{
		"username": "drsharma",
		"password": "9811112222",
		"role":     "professional",
	})
	if login.StatusCode != http.StatusOK {
		t.Fatalf("login after registration: expected 200, got %d", login.StatusCode)
	}
}

func TestRegisterProfessionalValidation(t *testing.T) {
	app := testutil.NewApp(t)

	resp := testutil.DoJSON(t, app, http.MethodPost, "/api/register_professional", map[string]any{
		"name":          "Dr. Sharma",
		"username":      "drsharma",
		"mobile_number": "9811112222",
		// gender and age missing
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := testutil.DecodeBody(t, resp)
	if body["error"] != "Name, username, mobile number, gender and age are required" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
	if n := userCount(t); n != 0 {
		t.Errorf("expected no users after rejected registration, got %d", n)
	}
}

func TestRegisterProfessionalDuplicateUsername(t *testing.T) {
	app := testutil.NewApp(t)
	testutil.SeedProfessional(t, "drsharma", "9811112222")

	resp := testutil.DoJSON(t, app, http.MethodPost, "/api/register_professional", map[string]any{
		"name":          "Another Sharma",
		"username":      "drsharma",
		"mobile_number": "9833334444",
		"gender":        "Male",
		"age":           30,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := testutil.DecodeBody(t, resp)
	if body["error"] != "Username already exists" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
	if n := userCount(t); n != 1 {
		t.Errorf("users table must be unchanged after duplicate registration, got %d rows", n)
	}
}

func TestGetProfessionalsWithCounts(t *testing.T) {
	app := testutil.NewApp(t)
	testutil.SeedAdmin(t)
	prof := testutil.SeedProfessional(t, "drkumar", "9876543210")

	testutil.SeedTraining(t, "CPR Basics", prof.ID, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	testutil.SeedTraining(t, "First Aid", prof.ID, time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC))
	for i := 0; i < 3; i++ {
		testutil.SeedTrainee(t, fmt.Sprintf("Trainee %d", i), prof.ID)
	}

	resp := testutil.DoJSON(t, app, http.MethodGet, "/api/get_professionals", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := testutil.DecodeBody(t, resp)

	list, ok := body["professionals"].([]any)
	if !ok {
		t.Fatalf("expected professionals array, got %T", body["professionals"])
	}
	if len(list) != 1 {
		t.Fatalf("admin rows must not be listed, expected 1 professional, got %d", len(list))
	}

	row := list[0].(map[string]any)
	if row["username"] != "drkumar" {
		t.Errorf("unexpected username: %v", row["username"])
	}
	if row["total_trainings"] != float64(2) {
		t.Errorf("expected total_trainings 2, got %v", row["total_trainings"])
	}
	if row["total_trainees_trained"] != float64(3) {
		t.Errorf("expected total_trainees_trained 3, got %v", row["total_trainees_trained"])
	}
	if created, _ := row["created_at"].(string); !timestampPattern.MatchString(created) {
		t.Errorf("created_at %q does not match YYYY-MM-DD HH:MM:SS", created)
	}
}

// The role check and the mutation run as two separate statements. A row
// removed between them surfaces as the mutation's own 404; these
// single-request tests never hit that window.
func TestEditProfessional(t *testing.T) {
	app := testutil.NewApp(t)
	admin := testutil.SeedAdmin(t)
	prof := testutil.SeedProfessional(t, "drkumar", "9876543210")

	payload := map[string]any{
		"name":             "Dr. Kumar Jr.",
		"username":         "drkumar",
		"mobile_number":    "9876543210",
		"gender":           "Male",
		"age":              36,
		"designation":      "HOD",
		"department":       "Cardiology",
		"specialization":   "CPR",
		"experience_years": 11,
	}

	resp := testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/api/edit_professional/%d", admin.ID), payload)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("editing an admin: expected 403, got %d", resp.StatusCode)
	}
	if body := testutil.DecodeBody(t, resp); body["error"] != "Cannot edit admin user" {
		t.Errorf("unexpected error message: %v", body["error"])
	}

	resp = testutil.DoJSON(t, app, http.MethodPut, "/api/edit_professional/9999", payload)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("editing a missing professional: expected 404, got %d", resp.StatusCode)
	}

	resp = testutil.DoJSON(t, app, http.MethodPut, fmt.Sprintf("/api/edit_professional/%d", prof.ID), payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var updated models.User
	if err := database.DB.First(&updated, prof.ID).Error; err != nil {
		t.Fatalf("reload professional: %v", err)
	}
	if updated.Name != "Dr. Kumar Jr." || updated.Designation != "HOD" || updated.ExperienceYears != 11 {
		t.Errorf("row not updated: %+v", updated)
	}
}

func TestDeleteProfessional(t *testing.T) {
	app := testutil.NewApp(t)
	admin := testutil.SeedAdmin(t)
	prof := testutil.SeedProfessional(t, "drkumar", "9876543210")

	resp := testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/delete_professional/%d", admin.ID), nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("deleting an admin: expected 403, got %d", resp.StatusCode)
	}
	if body := testutil.DecodeBody(t, resp); body["error"] != "Cannot delete admin user" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
	if n := userCount(t); n != 2 {
		t.Errorf("admin row must survive the attempt, got %d users", n)
	}

	resp = testutil.DoJSON(t, app, http.MethodDelete, "/api/delete_professional/9999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("deleting a missing professional: expected 404, got %d", resp.StatusCode)
	}

	resp = testutil.DoJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/delete_professional/%d", prof.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body := testutil.DecodeBody(t, resp); body["message"] != "Medical professional deleted successfully" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if n := userCount(t); n != 1 {
		t.Errorf("expected only the admin to remain, got %d users", n)
	}
}
