package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expansion/internal/domain"
	bucket "expansion/pkg/s3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	cities []domain.City
	plans  []domain.PlanHeader
	blocks []domain.MarketBlock
	err    error
}

func (f fakeSource) ListCitiesService(ctx context.Context) ([]domain.City, error) {
	return f.cities, f.err
}

func (f fakeSource) ListPlansService(ctx context.Context) ([]domain.PlanHeader, error) {
	return f.plans, nil
}

func (f fakeSource) GetResultsService(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.MonthResult, error) {
	return map[domain.MonthKey]domain.MonthResult{"2025-01": {Rides: cityID}}, nil
}

func (f fakeSource) GetDetailsService(ctx context.Context, cityID int64) ([]domain.Phase, error) {
	return nil, nil
}

func (f fakeSource) ListBlocksService(ctx context.Context) ([]domain.MarketBlock, error) {
	return f.blocks, nil
}

type memUploader struct {
	key  string
	body []byte
	err  error
}

func (m *memUploader) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.key, m.body = key, body
	return "https://bucket/" + key, nil
}

func newTestService(src fakeSource, up Uploader) *Service {
	s := NewReportService(src, src, src, up, zap.NewNop())
	s.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }
	return s
}

func TestExportService(t *testing.T) {
	src := fakeSource{
		cities: []domain.City{
			{ID: 1, Name: "A", Status: domain.StatusPlanning},
			{ID: 2, Name: "B", Status: domain.StatusNotServed},
			{ID: 3, Name: "C", Status: domain.StatusPlanning},
		},
		plans:  []domain.PlanHeader{{CityID: 1, StartMonth: "2025-01"}},
		blocks: []domain.MarketBlock{{ID: "b1", Name: "Norte", CityIDs: []int64{1, 3}}},
	}
	up := &memUploader{}

	res, err := newTestService(src, up).ExportService(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "snapshots/20250304T050607Z.json", res.Key)
	assert.Equal(t, "https://bucket/snapshots/20250304T050607Z.json", res.URL)
	assert.Equal(t, 3, res.Cities)
	assert.Equal(t, 1, res.Plans)
	assert.Equal(t, 1, res.Blocks)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(up.body, &snap))
	assert.Equal(t, 2, snap.ByStatus[domain.StatusPlanning])
	require.Len(t, snap.Plans, 1)
	assert.Equal(t, int64(1), snap.Plans[0].Results["2025-01"].Rides)
}

func TestExportServiceSourceError(t *testing.T) {
	_, err := newTestService(fakeSource{err: errors.New("db")}, &memUploader{}).ExportService(context.Background())
	assert.ErrorContains(t, err, "listar cidades")
}

func TestExportHandlerNotConfigured(t *testing.T) {
	h := NewReportHandler(newTestService(fakeSource{}, &memUploader{err: bucket.ErrNotConfigured}))
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/export", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ExportHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
