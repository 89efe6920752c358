// file: internals/features/billing/plans/controller/plan_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	planRoute "medlearn_backend/internals/features/billing/plans/route"
	"medlearn_backend/internals/testutil"
)

func newPlanApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testutil.OpenDB(t)
	app := testutil.NewApp(t)
	planRoute.PlanAdminRoutes(app.Group("/api/admin"), db)
	planRoute.PlanPublicRoutes(app.Group("/api/u"), db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

func listData(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	require.True(t, ok, "missing data list in %v", body)
	return data
}

func createPlan(t *testing.T, app *fiber.App, name string, price float64, active bool) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/plans", fiber.Map{
		"name":          name,
		"price":         price,
		"duration_days": 30,
		"device_limit":  2,
		"is_active":     active,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	data := body["data"].(map[string]any)
	return data["id"].(string)
}

func TestPlanCRUD(t *testing.T) {
	app := newPlanApp(t)

	id := createPlan(t, app, "Premium", 149000, true)

	status, body := doJSON(t, app, http.MethodPut, "/api/admin/plans/"+id, fiber.Map{
		"name":          "Premium Annual",
		"price":         990000,
		"duration_days": 365,
		"device_limit":  3,
		"access_features": fiber.Map{
			"question_bank":  true,
			"audio_playback": true,
		},
		"is_active": true,
	})
	require.Equal(t, http.StatusOK, status, "body: %v", body)
	data := body["data"].(map[string]any)
	require.Equal(t, "Premium Annual", data["name"])
	require.EqualValues(t, 365, data["duration_days"])
	features := data["access_features"].(map[string]any)
	require.Equal(t, true, features["audio_playback"])

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/plans/"+id, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/plans/"+id, nil)
	require.Equal(t, http.StatusNotFound, status, "soft-deleted plan is gone")
}

func TestPlanValidation(t *testing.T) {
	app := newPlanApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/plans", fiber.Map{
		"name": "Broken", "price": 10000, "duration_days": 0, "device_limit": 1,
	})
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/plans", fiber.Map{
		"name": "Negative", "price": -5, "duration_days": 30, "device_limit": 1,
	})
	require.Equal(t, http.StatusBadRequest, status)
}

func TestPlanDefaultAccessFeatures(t *testing.T) {
	app := newPlanApp(t)

	id := createPlan(t, app, "Basic", 49000, true)
	status, body := doJSON(t, app, http.MethodGet, "/api/admin/plans", nil)
	require.Equal(t, http.StatusOK, status)

	var features map[string]any
	for _, row := range listData(t, body) {
		plan := row.(map[string]any)
		if plan["id"] == id {
			features = plan["access_features"].(map[string]any)
		}
	}
	require.NotNil(t, features)
	require.Equal(t, true, features["question_bank"])
	require.Equal(t, false, features["offline_access"])
}

func TestPublicListingHidesInactivePlans(t *testing.T) {
	app := newPlanApp(t)

	createPlan(t, app, "Active", 99000, true)
	createPlan(t, app, "Retired", 59000, false)

	status, body := doJSON(t, app, http.MethodGet, "/api/u/plans", nil)
	require.Equal(t, http.StatusOK, status)
	rows := listData(t, body)
	require.Len(t, rows, 1)
	require.Equal(t, "Active", rows[0].(map[string]any)["name"])

	// admin listing still shows both
	status, body = doJSON(t, app, http.MethodGet, "/api/admin/plans", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, listData(t, body), 2)
}

func TestPlanListOrderedByPrice(t *testing.T) {
	app := newPlanApp(t)

	createPlan(t, app, "Gold", 300000, true)
	createPlan(t, app, "Bronze", 50000, true)
	createPlan(t, app, "Silver", 150000, true)

	status, body := doJSON(t, app, http.MethodGet, "/api/u/plans", nil)
	require.Equal(t, http.StatusOK, status)

	var names []string
	for _, row := range listData(t, body) {
		names = append(names, row.(map[string]any)["name"].(string))
	}
	require.Equal(t, []string{"Bronze", "Silver", "Gold"}, names)
}
