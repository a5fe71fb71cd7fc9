package blocks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	db "expansion/db/sqlc"
	"expansion/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepository struct {
	rows []db.MarketBlock
}

func (r *fakeRepository) ListMarketBlocks(ctx context.Context) ([]db.MarketBlock, error) {
	return r.rows, nil
}

func (r *fakeRepository) ReplaceMarketBlocks(ctx context.Context, arg []db.InsertMarketBlockParams) error {
	r.rows = r.rows[:0]
	for _, p := range arg {
		r.rows = append(r.rows, db.MarketBlock{ID: p.ID, Name: p.Name, CityIds: p.CityIds, Position: p.Position})
	}
	return nil
}

func TestReplaceBlocksServiceKeepsOrder(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewBlockService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.ReplaceBlocksService(ctx, []BlockRequest{
		{ID: "b", Name: "Triângulo", CityIDs: []int64{3170206}},
		{ID: "a", Name: "Zona da Mata"},
	}))

	got, err := svc.ListBlocksService(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, []int64{3170206}, got[0].CityIDs)
	assert.NotNil(t, got[1].CityIDs)
	assert.Empty(t, got[1].CityIDs)
	assert.Equal(t, int32(1), repo.rows[1].Position)
}

func TestReplaceBlocksServiceRejectsSharedCity(t *testing.T) {
	repo := &fakeRepository{rows: []db.MarketBlock{{ID: "keep"}}}
	svc := NewBlockService(repo, zap.NewNop())

	err := svc.ReplaceBlocksService(context.Background(), []BlockRequest{
		{ID: "a", Name: "A", CityIDs: []int64{1, 2}},
		{ID: "b", Name: "B", CityIDs: []int64{2}},
	})
	require.ErrorIs(t, err, domain.ErrCityInTwoBlocks)
	assert.Equal(t, "keep", repo.rows[0].ID)
}

func TestReplaceBlocksServiceRejectsDuplicateID(t *testing.T) {
	svc := NewBlockService(&fakeRepository{}, zap.NewNop())

	err := svc.ReplaceBlocksService(context.Background(), []BlockRequest{
		{ID: "a", Name: "A", CityIDs: []int64{1}},
		{ID: "a", Name: "A de novo", CityIDs: []int64{2}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateBlock)
}

func TestReplaceBlocksHandlerMapsConflicts(t *testing.T) {
	h := NewBlockHandler(NewBlockService(&fakeRepository{}, zap.NewNop()))
	e := echo.New()
	put := func(body string) int {
		req := httptest.NewRequest(http.MethodPut, "/api/blocks", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, h.ReplaceBlocksHandler(e.NewContext(req, rec)))
		return rec.Code
	}

	assert.Equal(t, http.StatusConflict,
		put(`{"blocks":[{"id":"a","name":"A","city_ids":[1,2]},{"id":"b","name":"B","city_ids":[2]}]}`))
	assert.Equal(t, http.StatusBadRequest,
		put(`{"blocks":[{"id":"a","name":"A","city_ids":[1]},{"id":"a","name":"B","city_ids":[3]}]}`))
}

func TestReplaceBlocksHandlerValidation(t *testing.T) {
	h := NewBlockHandler(NewBlockService(&fakeRepository{}, zap.NewNop()))
	e := echo.New()

	req := httptest.NewRequest(http.MethodPut, "/api/blocks", strings.NewReader(`{"blocks":[{"id":"","name":"x"}]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ReplaceBlocksHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
