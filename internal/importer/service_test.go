package importer

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"expansion/internal/city"
	"expansion/internal/domain"
	"expansion/pkg/ibge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSource struct {
	municipalities []ibge.Municipality
	stats          map[int64]ibge.Stats
	err            error
}

func (f fakeSource) Municipalities(ctx context.Context, stateCode int) ([]ibge.Municipality, error) {
	return f.municipalities, nil
}

func (f fakeSource) Stats(ctx context.Context, cityID int64) (ibge.Stats, error) {
	if f.err != nil {
		return ibge.Stats{}, f.err
	}
	return f.stats[cityID], nil
}

type fakeLocator struct{}

func (fakeLocator) Locate(ctx context.Context, name string) (float64, float64, error) {
	if name == "Sem Mapa" {
		return 0, 0, errors.New("not found")
	}
	return -19, -47, nil
}

type memCities struct {
	mu        sync.Mutex
	saved     []city.CityRequest
	refreshed []domain.City
	list      []domain.City
}

func (m *memCities) ListCitiesService(ctx context.Context) ([]domain.City, error) {
	return m.list, nil
}

func (m *memCities) UpsertCitiesService(ctx context.Context, data []city.CityRequest) ([]domain.City, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, data...)
	out := make([]domain.City, len(data))
	for i := range data {
		out[i] = domain.City{ID: data[i].ID}
	}
	return out, nil
}

func (m *memCities) UpdateDemographicsService(ctx context.Context, c domain.City) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshed = append(m.refreshed, c)
	return nil
}

func source() fakeSource {
	return fakeSource{
		municipalities: []ibge.Municipality{{ID: 1, Nome: "Grande"}, {ID: 2, Nome: "Pequena"}, {ID: 3, Nome: "Sem Mapa"}, {ID: 4, Nome: "Mapeada"}},
		stats: map[int64]ibge.Stats{
			1: {Population: 100000, FormalJobs: 20000, AverageFormalSalary: 2.5, AverageIncome: 1800},
			2: {Population: 5000},
			3: {Population: 60000},
			4: {Population: 80000, FormalJobs: 15000, AverageIncome: 1600},
		},
	}
}

func TestRunImportsAboveFloor(t *testing.T) {
	lat, lng := -21.0, -44.0
	store := &memCities{list: []domain.City{{
		ID: 1, Name: "Grande", Status: domain.StatusExpansion,
		TargetPopulation: 40000, UrbanizationIndex: 0.9, ImplementationStartDate: "2024-01",
	}, {
		ID: 4, Name: "Mapeada", Status: domain.StatusConsolidated, TargetPopulation: 30000,
		ImplementationStartDate: "2023-05", Latitude: &lat, Longitude: &lng,
	}}}
	svc := NewImportService(source(), fakeLocator{}, store, zap.NewNop())

	res, err := svc.Run(context.Background(), Options{StateCode: 31, MinPopulation: 50000})
	require.NoError(t, err)
	assert.Equal(t, Result{Fetched: 4, Imported: 2, Updated: 1, Skipped: 1, Geocoded: 1}, res)

	require.Len(t, store.refreshed, 1)
	mapeada := store.refreshed[0]
	assert.Equal(t, int64(4), mapeada.ID)
	assert.Equal(t, int64(80000), mapeada.Population)
	assert.Equal(t, int64(15000), mapeada.FormalJobs)
	assert.Equal(t, int64(30000), mapeada.TargetPopulation)
	assert.Equal(t, domain.StatusConsolidated, mapeada.Status)

	sort.Slice(store.saved, func(i, j int) bool { return store.saved[i].ID < store.saved[j].ID })
	require.Len(t, store.saved, 2)

	grande := store.saved[0]
	assert.Equal(t, string(domain.StatusExpansion), grande.Status)
	assert.Equal(t, int64(40000), grande.TargetPopulation)
	assert.Equal(t, 0.9, grande.UrbanizationIndex)
	assert.Equal(t, "2024-01", grande.ImplementationStartDate)
	assert.Equal(t, int64(100000), grande.Population)
	require.NotNil(t, grande.Latitude)

	semMapa := store.saved[1]
	assert.Equal(t, string(domain.StatusNotServed), semMapa.Status)
	assert.Equal(t, int64(27000), semMapa.TargetPopulation)
	assert.Nil(t, semMapa.Latitude)
}

func TestRunOnlyFilter(t *testing.T) {
	store := &memCities{}
	svc := NewImportService(source(), nil, store, zap.NewNop())

	res, err := svc.Run(context.Background(), Options{StateCode: 31, Only: []int64{2}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Fetched)
	require.Len(t, store.saved, 1)
	assert.Equal(t, int64(2), store.saved[0].ID)
}

func TestRunFailsOnStatsError(t *testing.T) {
	src := source()
	src.err = errors.New("ibge fora do ar")
	store := &memCities{}

	_, err := NewImportService(src, nil, store, zap.NewNop()).Run(context.Background(), Options{StateCode: 31})
	assert.ErrorContains(t, err, "ibge fora do ar")
	assert.Empty(t, store.saved)
}
