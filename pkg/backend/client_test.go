package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expansion/internal/domain"
	"expansion/internal/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ reconcile.Backend = (*Client)(nil)

type recorded struct {
	method string
	path   string
	auth   string
	body   string
}

func newServer(t *testing.T, status int, reply string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*rec = recorded{method: r.Method, path: r.URL.Path, auth: r.Header.Get("Authorization"), body: string(body)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "tok", 5*time.Second), rec
}

func TestListCitiesDecodesEnvelope(t *testing.T) {
	c, rec := newServer(t, http.StatusOK,
		`{"success":true,"data":[{"id":3106200,"name":"Belo Horizonte","status":"Planning"},{"id":3170206,"name":"Uberlândia","status":""}]}`)

	got, err := c.ListCities(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.StatusPlanning, got[0].Status)
	assert.Equal(t, domain.StatusNotServed, got[1].Status)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/cities", rec.path)
	assert.Equal(t, "Bearer tok", rec.auth)
}

func TestUpdateCityStatusSendsBody(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true}`)

	require.NoError(t, c.UpdateCityStatus(context.Background(), 3106200, domain.StatusExpansion))
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/api/cities/3106200/status", rec.path)
	assert.JSONEq(t, `{"status":"Expansion"}`, rec.body)
}

func TestFailureEnvelopeIsAPIError(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, `{"success":false,"error":"cidade não encontrada"}`)

	err := c.UpdateCityStatus(context.Background(), 1, domain.StatusPlanning)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.NotFound())
	assert.Equal(t, "cidade não encontrada", apiErr.Message)
}

func TestSuccessFalseWith200IsError(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"success":false,"error":"falhou"}`)

	_, err := c.ListPlans(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
}

func TestGetPlanDetailsNull(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true,"data":null}`)

	got, err := c.GetPlanDetails(context.Background(), 3106200)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, "/api/plans/3106200/details", rec.path)
}

func TestGetPlanResultsEmpty(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"success":true}`)

	got, err := c.GetPlanResults(context.Background(), 3106200)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetPlanRealCosts(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"success":true,"data":{"2025-02":{"marketing_cost":700,"operational_cost":55}}}`)

	got, err := c.GetPlanRealCosts(context.Background(), 3106200)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/plans/3106200/real-costs", rec.path)
	assert.InDelta(t, 700.0, got["2025-02"].MarketingCost, 1e-9)
	assert.InDelta(t, 55.0, got["2025-02"].OperationalCost, 1e-9)
}

func TestCreatePlanAndSaveResults(t *testing.T) {
	c, rec := newServer(t, http.StatusCreated, `{"success":true,"data":{"city_id":3106200,"start_month":"2025-03"}}`)

	got, err := c.CreatePlan(context.Background(), domain.PlanHeader{CityID: 3106200, StartMonth: "2025-03"})
	require.NoError(t, err)
	assert.Equal(t, domain.MonthKey("2025-03"), got.StartMonth)
	assert.JSONEq(t, `{"city_id":3106200,"start_month":"2025-03"}`, rec.body)

	require.NoError(t, c.SavePlanResults(context.Background(), 3106200, map[domain.MonthKey]domain.MonthResult{
		"2025-03": {Rides: 10},
	}))
	assert.Equal(t, http.MethodPut, rec.method)
	var body map[string]map[string]domain.MonthResult
	require.NoError(t, json.Unmarshal([]byte(rec.body), &body))
	assert.Equal(t, int64(10), body["results"]["2025-03"].Rides)
}
