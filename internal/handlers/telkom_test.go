package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/example/telkomportal/internal/handlers"
	"github.com/example/telkomportal/internal/scraper"
	"github.com/example/telkomportal/internal/storage"
	"github.com/example/telkomportal/internal/store"
)

func newPortalApp(t *testing.T) (*fiber.App, *store.UserStore, *store.ScrapedDataStore) {
	t.Helper()

	kv := storage.NewMemoryStore()
	users := store.NewUserStore(kv)
	data := store.NewScrapedDataStore(kv)
	provider := scraper.New(users, data, scraper.Delays{})

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	handler := handlers.NewPortalHandler(users, data, provider)
	app.Post("/api/telkom", handler.Handle)
	app.Get("/api/telkom", handler.Status)

	return app, users, data
}

func postAction(t *testing.T, app *fiber.App, body map[string]any) (*http.Response, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/telkom", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return parsed
}

func TestLoginAction(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action":   "login",
		"email":    "john.doe@example.com",
		"password": "password123",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("missing user in response: %v", body)
	}
	if user["accountNumber"] != "TLK001234567" {
		t.Errorf("accountNumber = %v, want TLK001234567", user["accountNumber"])
	}
	if _, present := user["password"]; present {
		t.Error("login response must not include the password")
	}
}

func TestLoginActionInvalidCredentials(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action":   "login",
		"email":    "nobody@example.com",
		"password": "nope",
	})

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	if body["success"] != false || body["error"] != "Invalid credentials" {
		t.Errorf("body = %v", body)
	}
}

func TestLoginActionMissingFields(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action": "login",
		"email":  "john.doe@example.com",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["error"] != "Email and password are required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestScrapeAction(t *testing.T) {
	app, _, data := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action":   "scrape",
		"username": "jane.smith@example.com",
		"password": "password456",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	bundle, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data in response: %v", body)
	}
	usage := bundle["usage"].(map[string]any)
	if usage["dataAllowance"] != float64(50000) {
		t.Errorf("dataAllowance = %v, want 50000", usage["dataAllowance"])
	}

	if _, ok := data.Get("TLK007654321"); !ok {
		t.Error("scrape should persist a bundle for the account")
	}
}

func TestScrapeActionMissingCredentials(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action":   "scrape",
		"username": "jane.smith@example.com",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["error"] != "Username and password are required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestRefreshActionUnknownAccount(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action":        "refresh",
		"accountNumber": "TLK999999999",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["success"] != false || body["error"] != "Account not found" {
		t.Errorf("body = %v", body)
	}
}

func TestRefreshAction(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action":        "refresh",
		"accountNumber": "TLK001234567",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	bundle := body["data"].(map[string]any)
	usage := bundle["usage"].(map[string]any)
	if usage["dataAllowance"] != float64(100000) {
		t.Errorf("dataAllowance = %v, want 100000", usage["dataAllowance"])
	}
}

func TestGetUserDataAction(t *testing.T) {
	app, _, _ := newPortalApp(t)

	// Before any scrape the user resolves but the bundle is null.
	resp, body := postAction(t, app, map[string]any{
		"action":        "getUserData",
		"accountNumber": "TLK001234567",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body["data"] != nil {
		t.Errorf("data = %v, want null before first scrape", body["data"])
	}

	postAction(t, app, map[string]any{"action": "refresh", "accountNumber": "TLK001234567"})

	_, body = postAction(t, app, map[string]any{
		"action":        "getUserData",
		"accountNumber": "TLK001234567",
	})
	if body["data"] == nil {
		t.Error("data should be present after a refresh")
	}
}

func TestGetUserDataUnknownAccount(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{
		"action":        "getUserData",
		"accountNumber": "TLK999999999",
	})

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if body["error"] != "User not found" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestInvalidAction(t *testing.T) {
	app, _, _ := newPortalApp(t)

	resp, body := postAction(t, app, map[string]any{"action": "detonate"})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body["error"] != "Invalid action" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	app, _, _ := newPortalApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/telkom?action=status&accountNumber=TLK001234567", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)

	status, ok := body["scraperStatus"].(map[string]any)
	if !ok {
		t.Fatalf("missing scraperStatus: %v", body)
	}
	if status["isAuthenticated"] != false {
		t.Error("scraper should start unauthenticated")
	}
	if body["user"] == nil {
		t.Error("status should resolve the seed user")
	}

	// A successful scrape flips the diagnostics.
	postAction(t, app, map[string]any{
		"action":   "scrape",
		"username": "john.doe@example.com",
		"password": "password123",
	})

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/telkom?action=status&accountNumber=TLK001234567", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	body = decodeBody(t, resp)
	status = body["scraperStatus"].(map[string]any)
	if status["isAuthenticated"] != true {
		t.Error("scraper should report authenticated after a scrape")
	}
}

func TestStatusEndpointRejectsOtherShapes(t *testing.T) {
	app, _, _ := newPortalApp(t)

	for _, target := range []string{
		"/api/telkom",
		"/api/telkom?action=status",
		"/api/telkom?action=other&accountNumber=TLK001234567",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", target, resp.StatusCode)
		}
		body := decodeBody(t, resp)
		if body["error"] != "Invalid request" {
			t.Errorf("GET %s error = %v", target, body["error"])
		}
	}
}
