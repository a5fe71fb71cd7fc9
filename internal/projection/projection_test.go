package projection

import (
	"testing"

	"expansion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCities() []domain.City {
	return []domain.City{
		{ID: 1, Name: "Pequena", Population: 10_000, TargetPopulation: 5_000, AverageIncome: 1_500, AverageFormalSalary: 2_000, FormalJobs: 1_000},
		{ID: 2, Name: "Grande", Population: 1_000_000, TargetPopulation: 200_000, AverageIncome: 3_500, AverageFormalSalary: 4_000, FormalJobs: 300_000},
		{ID: 3, Name: "Média", Population: 90_000, TargetPopulation: 45_000, AverageIncome: 2_500, AverageFormalSalary: 3_000, FormalJobs: 20_000},
	}
}

func TestMarketPotential_Example(t *testing.T) {
	city := domain.City{TargetPopulation: 10_000}

	assert.InDelta(t, 1_000, MarketPotential(city, Medium), 1e-9)
	assert.InDelta(t, 2_500, PotentialRevenue(city, DefaultScenario), 1e-9)
}

func TestRevenueMatchesPotentialTimesPrice(t *testing.T) {
	for _, city := range testCities() {
		for _, s := range Scenarios {
			assert.Equal(t, MarketPotential(city, s)*PricePerRide, PotentialRevenue(city, s), "%s/%s", city.Name, s)
		}
	}
}

func TestMarketPotentials_AllScenariosInOrder(t *testing.T) {
	city := domain.City{TargetPopulation: 1_000}
	got := MarketPotentials(city)

	require.Len(t, got, 5)
	want := []float64{20, 50, 100, 150, 200}
	for i, p := range got {
		assert.Equal(t, Scenarios[i], p.Scenario)
		assert.InDelta(t, want[i], p.Rides, 1e-9)
	}
}

func TestFinancialProjections(t *testing.T) {
	city := domain.City{TargetPopulation: 10_000}
	got := FinancialProjections(city)

	require.Len(t, got, 5)
	for i, p := range got {
		assert.Equal(t, Scenarios[i], p.Scenario)
		assert.InDelta(t, PotentialRevenue(city, p.Scenario), p.Revenue, 1e-9)
	}
	assert.InDelta(t, 5_000, got[4].Revenue, 1e-9)
}

func TestGrowthRoadmap(t *testing.T) {
	city := domain.City{TargetPopulation: 10_000}
	roadmap := GrowthRoadmap(city, 0.10)

	require.Len(t, roadmap, 6)
	assert.Equal(t, 1, roadmap[0].Month)
	assert.InDelta(t, 45, roadmap[0].Rides, 1e-9)
	assert.Equal(t, 6, roadmap[5].Month)
	assert.Equal(t, float64(city.TargetPopulation)*0.10, roadmap[5].Rides)

	for i := 1; i < len(roadmap); i++ {
		assert.Greater(t, roadmap[i].Rides, roadmap[i-1].Rides)
	}
}

func TestGrowthRoadmap_LastPointReachesTarget(t *testing.T) {
	for _, city := range testCities() {
		for _, p := range []float64{0.02, 0.07, 0.2} {
			roadmap := GrowthRoadmap(city, p)
			assert.Equal(t, float64(city.TargetPopulation)*p, roadmap[5].Rides)
		}
	}
}
