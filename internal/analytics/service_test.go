package analytics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expansion/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepository struct {
	names    []string
	from, to domain.MonthKey
	rows     []MonthlyRides
	err      error
}

func (r *fakeRepository) MonthlyRides(ctx context.Context, names []string, from, to domain.MonthKey) ([]MonthlyRides, error) {
	r.names, r.from, r.to = names, from, to
	return r.rows, r.err
}

type fakeCities map[int64]domain.City

func (f fakeCities) GetCityService(ctx context.Context, id int64) (domain.City, error) {
	c, ok := f[id]
	if !ok {
		return domain.City{}, domain.ErrCityNotFound
	}
	return c, nil
}

var cities = fakeCities{3170206: {ID: 3170206, Name: "Uberlândia"}}

func TestMonthlyRidesQuery(t *testing.T) {
	sql, args, err := monthlyRidesQuery([]string{"uberlândia", "uberlandia"}, "2025-01", "2025-03").ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM rides")
	assert.Contains(t, sql, "lower(city_name) IN ($1,$2)")
	assert.Contains(t, sql, "status = $3")
	assert.Contains(t, sql, "completed_at >= $4")
	assert.Contains(t, sql, "completed_at < $5")
	assert.Contains(t, sql, "GROUP BY 1 ORDER BY 1")
	require.Len(t, args, 5)
	assert.Equal(t, statusCompleted, args[2])
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), args[3])
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), args[4])
}

func TestRidesServiceUsesAlternateNames(t *testing.T) {
	repo := &fakeRepository{rows: []MonthlyRides{{Month: "2025-01", Rides: 120, Revenue: 300, Drivers: 4}}}
	svc := NewAnalyticsService(repo, cities, nil, zap.NewNop())

	got, err := svc.RidesService(context.Background(), 3170206, "2025-01", "2025-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"uberlândia", "uberlandia"}, repo.names)
	assert.Equal(t, repo.names, got.Names)
	require.Len(t, got.Months, 1)
	assert.Equal(t, int64(120), got.Months[0].Rides)
}

func TestRidesServiceEmptyIsNotNil(t *testing.T) {
	svc := NewAnalyticsService(&fakeRepository{}, cities, nil, zap.NewNop())

	got, err := svc.RidesService(context.Background(), 3170206, "2025-01", "2025-02")
	require.NoError(t, err)
	assert.NotNil(t, got.Months)
}

func TestRidesServiceUnknownCity(t *testing.T) {
	svc := NewAnalyticsService(&fakeRepository{}, cities, nil, zap.NewNop())
	_, err := svc.RidesService(context.Background(), 1, "2025-01", "2025-02")
	assert.True(t, errors.Is(err, domain.ErrCityNotFound))
}

func TestRepositoryWithoutPoolIsDisabled(t *testing.T) {
	_, err := NewAnalyticsRepository(nil).MonthlyRides(context.Background(), []string{"x"}, "2025-01", "2025-01")
	assert.ErrorIs(t, err, ErrDisabled)
}

func serveRides(t *testing.T, repo *fakeRepository, query string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewAnalyticsHandler(NewAnalyticsService(repo, cities, nil, zap.NewNop()))
	h.now = func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) }

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/analytics/cities/3170206/rides"+query, nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("3170206")
	require.NoError(t, h.RidesHandler(c))
	return rec
}

func TestRidesHandlerDefaultsToLastSixMonths(t *testing.T) {
	repo := &fakeRepository{}
	rec := serveRides(t, repo, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.MonthKey("2025-01"), repo.from)
	assert.Equal(t, domain.MonthKey("2025-06"), repo.to)
}

func TestRidesHandlerRejectsInvertedRange(t *testing.T) {
	rec := serveRides(t, &fakeRepository{}, "?from=2025-05&to=2025-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serveRides(t, &fakeRepository{}, "?from=2025-5")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRidesHandlerDisabled(t *testing.T) {
	rec := serveRides(t, &fakeRepository{err: ErrDisabled}, "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
