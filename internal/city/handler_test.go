package city

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expansion/pkg/envelope"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler() (*Handler, *fakeRepository) {
	repo := newFakeRepository(uberlandia())
	return NewCityHandler(NewCityService(repo, nil, zap.NewNop())), repo
}

func serve(h echo.HandlerFunc, method, path, body string, params ...string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	_ = h(c)
	return rec
}

func TestUpdateStatusHandlerRejectsUnknownStatus(t *testing.T) {
	h, repo := newTestHandler()

	rec := serve(h.UpdateStatusHandler, http.MethodPatch, "/api/cities/3170206/status",
		`{"status":"Implementation"}`, "id", "3170206")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NotServed", repo.rows[3170206].Status)
}

func TestUpdateStatusHandler(t *testing.T) {
	h, repo := newTestHandler()

	rec := serve(h.UpdateStatusHandler, http.MethodPatch, "/api/cities/3170206/status",
		`{"status":"Consolidated"}`, "id", "3170206")

	require.Equal(t, http.StatusOK, rec.Code)
	var body envelope.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Consolidated", repo.rows[3170206].Status)
}

func TestGetCityHandlerNotFound(t *testing.T) {
	h, _ := newTestHandler()

	rec := serve(h.GetCityHandler, http.MethodGet, "/api/cities/42", "", "id", "42")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestBulkUpsertHandlerValidates(t *testing.T) {
	h, _ := newTestHandler()

	rec := serve(h.BulkUpsertHandler, http.MethodPost, "/api/cities/bulk",
		`{"cities":[{"id":3106200,"name":"Belo Horizonte","implementation_start_date":"2025-1"}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h.BulkUpsertHandler, http.MethodPost, "/api/cities/bulk",
		`{"cities":[{"id":3106200,"name":"Belo Horizonte","population":2315560,"target_population":1000000}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateCityHandlerKeepsStatus(t *testing.T) {
	h, repo := newTestHandler()
	row := repo.rows[3170206]
	row.Status = "Expansion"
	row.ImplementationStartDate = sql.NullString{String: "2024-01", Valid: true}
	repo.rows[3170206] = row

	rec := serve(h.UpdateCityHandler, http.MethodPut, "/api/cities/3170206",
		`{"name":"Uberlândia","population":720000,"target_population":310000}`, "id", "3170206")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Expansion", repo.rows[3170206].Status)
	assert.Equal(t, "2024-01", repo.rows[3170206].ImplementationStartDate.String)
	assert.Equal(t, int64(720000), repo.rows[3170206].Population)
}

func TestCityIDRejectsBadParam(t *testing.T) {
	h, _ := newTestHandler()

	rec := serve(h.GetCityHandler, http.MethodGet, "/api/cities/abc", "", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h.GetCityHandler, http.MethodGet, "/api/cities/-3", "", "id", "-3")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectionsHandlerBadPenetration(t *testing.T) {
	h, _ := newTestHandler()

	rec := serve(h.ProjectionsHandler, http.MethodGet, "/api/cities/3170206/projections?penetration=abc", "", "id", "3170206")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
