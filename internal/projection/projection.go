// Package projection holds the closed-form market, revenue and growth formulas
// used by the planning dashboard. Everything here is pure.
package projection

import "expansion/internal/domain"

type Scenario string

const (
	VeryLow  Scenario = "VeryLow"
	Low      Scenario = "Low"
	Medium   Scenario = "Medium"
	High     Scenario = "High"
	VeryHigh Scenario = "VeryHigh"
)

const (
	PricePerRide    = 2.50
	DefaultScenario = Medium
)

// Scenarios lists the penetration scenarios in ascending order.
var Scenarios = []Scenario{VeryLow, Low, Medium, High, VeryHigh}

var penetration = map[Scenario]float64{
	VeryLow:  0.02,
	Low:      0.05,
	Medium:   0.10,
	High:     0.15,
	VeryHigh: 0.20,
}

// Curve is the fraction of the target penetration reached in months 1 through 6.
var Curve = [6]float64{0.045, 0.09, 0.18, 0.36, 0.63, 1.0}

// Penetration returns the scenario fraction; unknown scenarios yield 0.
func Penetration(s Scenario) float64 {
	return penetration[s]
}

type ScenarioPotential struct {
	Scenario Scenario `json:"scenario"`
	Rides    float64  `json:"rides"`
}

type ScenarioRevenue struct {
	Scenario Scenario `json:"scenario"`
	Revenue  float64  `json:"revenue"`
}

type RoadmapPoint struct {
	Month int     `json:"month"`
	Rides float64 `json:"rides"`
}

// MarketPotential is the monthly ride volume of the city under the scenario.
func MarketPotential(city domain.City, s Scenario) float64 {
	return float64(city.TargetPopulation) * Penetration(s)
}

// MarketPotentials returns one entry per scenario, in Scenarios order.
func MarketPotentials(city domain.City) []ScenarioPotential {
	out := make([]ScenarioPotential, 0, len(Scenarios))
	for _, s := range Scenarios {
		out = append(out, ScenarioPotential{Scenario: s, Rides: MarketPotential(city, s)})
	}
	return out
}

func PotentialRevenue(city domain.City, s Scenario) float64 {
	return MarketPotential(city, s) * PricePerRide
}

func FinancialProjections(city domain.City) []ScenarioRevenue {
	out := make([]ScenarioRevenue, 0, len(Scenarios))
	for _, s := range Scenarios {
		out = append(out, ScenarioRevenue{
			Scenario: s,
			Revenue:  float64(city.TargetPopulation) * Penetration(s) * PricePerRide,
		})
	}
	return out
}

// GrowthRoadmap ramps towards targetPenetration of the target population over six months.
func GrowthRoadmap(city domain.City, targetPenetration float64) []RoadmapPoint {
	out := make([]RoadmapPoint, len(Curve))
	for i, fraction := range Curve {
		out[i] = RoadmapPoint{
			Month: i + 1,
			Rides: float64(city.TargetPopulation) * fraction * targetPenetration,
		}
	}
	return out
}
