package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndMe(t *testing.T) {
	app := newTestApp(t)
	token, userID := registerUser(t, app, "owner@example.com", "LANDLORD")

	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	user := body["data"].(map[string]interface{})
	assert.Equal(t, userID, user["id"])
	assert.Equal(t, "owner@example.com", user["email"])
	assert.Equal(t, "LANDLORD", user["role"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, user, "password")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "owner@example.com", "LANDLORD")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":     "owner@example.com",
		"password":  "hunter22",
		"firstName": "Other",
		"lastName":  "Person",
		"role":      "TENANT",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"email":    "bad",
		"password": "short",
		"role":     "WIZARD",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "role")
}

func TestLoginAndRefreshFlow(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "tenant@example.com", "TENANT")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "Tenant@Example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	refresh := data["refreshToken"].(string)
	require.NotEmpty(t, refresh)

	resp, body = doJSON(t, app, http.MethodPost, "/api/auth/refresh", "", map[string]interface{}{
		"refreshToken": refresh,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["data"].(map[string]interface{})["token"])

	// The access token is signed with a different secret and must not refresh.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/auth/refresh", "", map[string]interface{}{
		"refreshToken": data["token"],
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	registerUser(t, app, "tenant@example.com", "TENANT")

	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "tenant@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestCheckEmailAvailability(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/check-email?email=new@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"].(map[string]interface{})["available"])

	registerUser(t, app, "taken@example.com", "TENANT")
	resp, body = doJSON(t, app, http.MethodGet, "/api/auth/check-email?email=taken@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["data"].(map[string]interface{})["available"])

	submitApplication(t, app, "applied@example.com")
	resp, body = doJSON(t, app, http.MethodGet, "/api/auth/check-email?email=applied@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["data"].(map[string]interface{})["available"])
}
