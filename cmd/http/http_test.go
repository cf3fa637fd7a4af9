package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albait/assistant/internal/catalog"
	"github.com/albait/assistant/internal/engine"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	items, err := catalog.LoadItems("")
	require.NoError(t, err)
	pages, err := catalog.LoadPages("")
	require.NoError(t, err)

	manager := engine.NewManager(items, pages, engine.DefaultConfig(), time.Minute, zerolog.Nop())
	app := fiber.New()
	New(manager, zerolog.Nop()).Register(app)
	return app
}

func postSearch(t *testing.T, app *fiber.App, body SearchRequest) (*http.Response, SearchResponse) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out SearchResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestSearchEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, out := postSearch(t, app, SearchRequest{Query: "harga paket umroh"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, out.SessionID)
	assert.NotEmpty(t, out.Result.Results)
	assert.Equal(t, "paket_umum", out.Result.Intent)
}

func TestSearchEndpointSessionContinuity(t *testing.T) {
	app := newTestApp(t)

	_, first := postSearch(t, app, SearchRequest{Query: "paket vip"})
	resp, second := postSearch(t, app, SearchRequest{
		SessionID: first.SessionID,
		Query:     "harga umroh",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, 2, second.Result.QueryCount)
	assert.True(t, second.Result.ShowCallToAction)
}

func TestSearchEndpointRejectsEmptyQuery(t *testing.T) {
	app := newTestApp(t)

	resp, _ := postSearch(t, app, SearchRequest{Query: ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchEndpointRejectsMalformedBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestResetSessionEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, out := postSearch(t, app, SearchRequest{Query: "paket vip"})

	req := httptest.NewRequest(http.MethodDelete, "/api/session/"+out.SessionID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, after := postSearch(t, app, SearchRequest{SessionID: out.SessionID, Query: "paket reguler"})
	assert.Equal(t, 1, after.Result.QueryCount)
}

func TestComparisonEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/packages/comparison", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var cmp engine.Comparison
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cmp))
	require.Len(t, cmp.Packages, 3)
	assert.Equal(t, "Rp 28.5 Juta", cmp.Packages[0].Price)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
