package projection

import "expansion/internal/domain"

type Averages struct {
	Income           float64 `json:"income"`
	Population       float64 `json:"population"`
	TargetPopulation float64 `json:"target_population"`
	FormalSalary     float64 `json:"formal_salary"`
	FormalJobs       float64 `json:"formal_jobs"`
	// TargetRatio is the mean of each city's target/population ratio; every city weighs the same.
	TargetRatio float64 `json:"target_ratio"`
}

// StateAverages returns the arithmetic means over cities. An empty list yields zeros.
func StateAverages(cities []domain.City) Averages {
	if len(cities) == 0 {
		return Averages{}
	}

	var sum Averages
	for _, c := range cities {
		sum.Income += c.AverageIncome
		sum.Population += float64(c.Population)
		sum.TargetPopulation += float64(c.TargetPopulation)
		sum.FormalSalary += c.AverageFormalSalary
		sum.FormalJobs += float64(c.FormalJobs)
		if c.Population > 0 {
			sum.TargetRatio += float64(c.TargetPopulation) / float64(c.Population)
		}
	}

	n := float64(len(cities))
	return Averages{
		Income:           sum.Income / n,
		Population:       sum.Population / n,
		TargetPopulation: sum.TargetPopulation / n,
		FormalSalary:     sum.FormalSalary / n,
		FormalJobs:       sum.FormalJobs / n,
		TargetRatio:      sum.TargetRatio / n,
	}
}

// WeightedTargetRatio is total target population over total population.
func WeightedTargetRatio(cities []domain.City) float64 {
	var target, population int64
	for _, c := range cities {
		target += c.TargetPopulation
		population += c.Population
	}
	if population == 0 {
		return 0
	}
	return float64(target) / float64(population)
}
