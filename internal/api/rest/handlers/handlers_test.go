package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RentHaven/property_service/internal/api/rest/handlers"
	"github.com/RentHaven/property_service/internal/domain"
	"github.com/RentHaven/property_service/internal/helper"
	"github.com/RentHaven/property_service/internal/repository"
	"github.com/RentHaven/property_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp wires the full route surface against an in-memory database,
// mirroring api.StartServer minus postgres and kafka.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Application{}))

	auth := helper.SetupAuth("test-access", "test-refresh", time.Hour, 24*time.Hour)
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	app := fiber.New()
	handlers.NewAuthHandler(services.NewAuthService(userRepo, appRepo, auth, nil), auth, userRepo).SetupRoutes(app)
	handlers.NewApplicationHandler(services.NewApplicationService(appRepo, nil), auth, userRepo).SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp, parsed
}

func registerUser(t *testing.T, app *fiber.App, email, role string) (token string, userID string) {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":     email,
		"password":  "hunter22",
		"firstName": "Pat",
		"lastName":  "Person",
		"role":      role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	return data["token"].(string), user["id"].(string)
}

func submitApplication(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/applications", "", applicationBody(email))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func applicationBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"applicantEmail":           email,
		"applicantName":            "Ada Applicant",
		"phoneNumber":              "+2348012345678",
		"dateOfBirth":              "1990-05-10",
		"employmentStatus":         "EMPLOYED",
		"employerName":             "Acme Ltd",
		"familySize":               3,
		"desiredAccommodationType": "TWO_BEDROOM",
		"previousAddress":          "12 Old Lane",
		"reasonForLeaving":         "Relocation for work",
		"yearlyRentCapacity":       12000,
	}
}
