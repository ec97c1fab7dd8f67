package forge

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *Service) {
	t.Helper()
	svc, h, _ := newServiceFixture(t)
	stockBank(t, h)

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, svc
}

func TestHandler_Craft(t *testing.T) {
	app, _ := newTestApp(t)

	body, err := json.Marshal(CraftRequest{
		BaseItemID: "melvorD:Sword_Basic",
		Runes:      []string{"runesmithing:r_power", "runesmithing:r_speed", "runesmithing:r_luck"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/forge/craft", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result CraftResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "e0", result.SlotID)
	assert.Equal(t, "Basic Sword (Power-Speed-Luck)", result.Name)
}

func TestHandler_Craft_Errors(t *testing.T) {
	t.Run("BadRuneCount", func(t *testing.T) {
		app, _ := newTestApp(t)
		body, _ := json.Marshal(CraftRequest{
			BaseItemID: "melvorD:Sword_Basic",
			Runes:      []string{"runesmithing:r_power"},
		})
		req := httptest.NewRequest("POST", "/forge/craft", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownBaseItem", func(t *testing.T) {
		app, _ := newTestApp(t)
		body, _ := json.Marshal(CraftRequest{
			BaseItemID: "melvorD:Nope",
			Runes:      []string{"runesmithing:r_power", "runesmithing:r_speed", "runesmithing:r_luck"},
		})
		req := httptest.NewRequest("POST", "/forge/craft", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		app, _ := newTestApp(t)
		req := httptest.NewRequest("POST", "/forge/craft", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_RecordsAndReport(t *testing.T) {
	app, _ := newTestApp(t)

	body, _ := json.Marshal(CraftRequest{
		BaseItemID: "melvorD:Sword_Basic",
		Runes:      []string{"runesmithing:r_power", "runesmithing:r_speed", "runesmithing:r_luck"},
	})
	req := httptest.NewRequest("POST", "/forge/craft", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/forge/records", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 1)

	resp, err = app.Test(httptest.NewRequest("GET", "/forge/report", nil))
	require.NoError(t, err)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.Used)
	assert.Equal(t, 200, report.Capacity)
}

func TestHandler_Clean(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/forge/clean", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
