package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitApplicationEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/applications", "", applicationBody("ada@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Application submitted successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PENDING", data["applicationStatus"])
	assert.Equal(t, "ada@example.com", data["applicantEmail"])
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["submittedAt"])
}

func TestSubmitApplicationDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	submitApplication(t, app, "ada@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/applications", "", applicationBody("ada@example.com"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}

func TestSubmitApplicationValidation(t *testing.T) {
	app := newTestApp(t)

	payload := applicationBody("not-an-email")
	payload["familySize"] = 0
	payload["employmentStatus"] = "FREELANCING"

	resp, body := doJSON(t, app, http.MethodPost, "/api/applications", "", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "applicantEmail")
	assert.Contains(t, errs, "familySize")
	assert.Contains(t, errs, "employmentStatus")
}

func TestListApplicationsRequiresLandlord(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/applications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	tenantToken, _ := registerUser(t, app, "tenant@example.com", "TENANT")
	resp, _ = doJSON(t, app, http.MethodGet, "/api/applications", tenantToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListApplicationsPagination(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "owner@example.com", "LANDLORD")

	submitApplication(t, app, "a@example.com")
	submitApplication(t, app, "b@example.com")
	submitApplication(t, app, "c@example.com")

	resp, body := doJSON(t, app, http.MethodGet, "/api/applications?page=1&limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Len(t, body["data"], 2)
	page := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 1, page["page"])
	assert.EqualValues(t, 2, page["limit"])
	assert.EqualValues(t, 3, page["total"])
	assert.EqualValues(t, 2, page["totalPages"])

	// Past the last page: empty data, pagination still reflects the full set.
	resp, body = doJSON(t, app, http.MethodGet, "/api/applications?page=5&limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["data"])
	page = body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 3, page["total"])

	// Oversized limits clamp to the maximum page size.
	resp, body = doJSON(t, app, http.MethodGet, "/api/applications?limit=500", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"], 3)
	page = body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 100, page["limit"])
	assert.EqualValues(t, 1, page["totalPages"])
}

func TestListUnknownStatusFilter(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "owner@example.com", "LANDLORD")

	resp, body := doJSON(t, app, http.MethodGet, "/api/applications?status=ARCHIVED", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "status")
}

func TestReviewAndPublicStatusFlow(t *testing.T) {
	app := newTestApp(t)
	appID := submitApplication(t, app, "a@x.com")
	token, landlordID := registerUser(t, app, "owner@example.com", "LANDLORD")

	resp, body := doJSON(t, app, http.MethodPut, "/api/applications/"+appID+"/review", token, map[string]interface{}{
		"applicationStatus": "APPROVED",
		"reviewNotes":       "looks good",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "APPROVED", data["applicationStatus"])
	assert.Equal(t, landlordID, data["reviewedBy"])
	assert.NotEmpty(t, data["reviewedAt"])
	landlord := data["landlord"].(map[string]interface{})
	assert.Equal(t, "owner@example.com", landlord["email"])

	// The landlord can fetch the full record by id.
	resp, body = doJSON(t, app, http.MethodGet, "/api/applications/"+appID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := body["data"].(map[string]interface{})
	assert.Equal(t, appID, fetched["id"])
	assert.Equal(t, "APPROVED", fetched["applicationStatus"])
	assert.EqualValues(t, 12000, fetched["yearlyRentCapacity"])

	// A second decision is rejected once the application is approved.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/applications/"+appID+"/review", token, map[string]interface{}{
		"applicationStatus": "REJECTED",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The applicant checks status without a token and sees the decision,
	// but none of the financial or background details.
	resp, raw := doJSON(t, app, http.MethodGet, "/api/applications/status?email=a@x.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status := raw["data"].(map[string]interface{})
	assert.Equal(t, "APPROVED", status["applicationStatus"])
	assert.Equal(t, "looks good", status["reviewNotes"])
	assert.Equal(t, "Ada Applicant", status["applicantName"])

	encoded, err := json.Marshal(raw)
	require.NoError(t, err)
	for _, field := range []string{"yearlyRentCapacity", "previousAddress", "reasonForLeaving", "employerName", "phoneNumber", "dateOfBirth"} {
		assert.NotContains(t, string(encoded), field)
	}
}

func TestReviewMissingApplication(t *testing.T) {
	app := newTestApp(t)
	token, _ := registerUser(t, app, "owner@example.com", "LANDLORD")

	resp, _ := doJSON(t, app, http.MethodPut, "/api/applications/no-such-id/review", token, map[string]interface{}{
		"applicationStatus": "UNDER_REVIEW",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Non-UUID path params are not-found, never a database error.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/applications/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatusUnknownEmail(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/applications/status?email=nobody@example.com", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No application found for this email address", body["message"])
}
