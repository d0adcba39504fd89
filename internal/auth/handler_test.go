package auth_test

import (
	"net/http"
	"testing"

	"github.com/garvv29/Suraksha/internal/testutil"
)

func TestLoginSuccessOmitsPassword(t *testing.T) {
	app := testutil.NewApp(t)
	testutil.SeedProfessional(t, "drkumar", "9876543210")

	resp := testutil.DoJSON(t, app, http.MethodPost, "/api/login", map[string]any{
		"username": "drkumar",
		"password": "9876543210",
		"role":     "professional",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := testutil.DecodeBody(t, resp)
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body["success"])
	}
	if tok, _ := body["token"].(string); tok == "" {
		t.Errorf("expected a session token in the payload")
	}

	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object, got %T", body["user"])
	}
	if user["username"] != "drkumar" {
		t.Errorf("unexpected username: %v", user["username"])
	}
	if user["role"] != "professional" {
		t.Errorf("unexpected role: %v", user["role"])
	}
	if _, present := user["password"]; present {
		t.Errorf("password must not appear in the login payload")
	}
}

func TestLoginMissingFields(t *testing.T) {
	app := testutil.NewApp(t)

	resp := testutil.DoJSON(t, app, http.MethodPost, "/api/login", map[string]any{
		"username": "drkumar",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := testutil.DecodeBody(t, resp)
	if body["error"] != "All fields are required" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

// Wrong password, unknown username and wrong role must all produce the
// same generic message.
func TestLoginInvalidCredentials(t *testing.T) {
	app := testutil.NewApp(t)
	testutil.SeedProfessional(t, "drkumar", "9876543210")

	cases := []map[string]any{
		{"username": "drkumar", "password": "wrong", "role": "professional"},
		{"username": "nobody", "password": "9876543210", "role": "professional"},
		{"username": "drkumar", "password": "9876543210", "role": "admin"},
	}
	for _, payload := range cases {
		resp := testutil.DoJSON(t, app, http.MethodPost, "/api/login", payload)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("payload %v: expected 401, got %d", payload, resp.StatusCode)
		}
		body := testutil.DecodeBody(t, resp)
		if body["error"] != "Invalid credentials" {
			t.Errorf("payload %v: unexpected error message: %v", payload, body["error"])
		}
	}
}
