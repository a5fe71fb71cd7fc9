package projection

import (
	"math"

	"expansion/internal/domain"
)

const gradualPenetration = 0.10

type MonthlyGoal struct {
	Month domain.MonthKey `json:"month"`
	Rides float64         `json:"rides"`
}

// GradualMonthlyGoal is the ride goal for monthKey given the implementation month.
// Months before implementation have no goal; months past the curve stay on its last point.
func GradualMonthlyGoal(city domain.City, monthKey, implementationStart string) (float64, error) {
	month, err := domain.ParseMonthKey(monthKey)
	if err != nil {
		return 0, err
	}
	start, err := domain.ParseMonthKey(implementationStart)
	if err != nil {
		return 0, err
	}
	return gradualGoal(city, domain.MonthsBetween(start, month)), nil
}

// GradualGoals evaluates GradualMonthlyGoal for each month in order.
func GradualGoals(city domain.City, implementationStart string, months []domain.MonthKey) ([]MonthlyGoal, error) {
	start, err := domain.ParseMonthKey(implementationStart)
	if err != nil {
		return nil, err
	}
	out := make([]MonthlyGoal, 0, len(months))
	for _, m := range months {
		if _, err := domain.ParseMonthKey(string(m)); err != nil {
			return nil, err
		}
		out = append(out, MonthlyGoal{Month: m, Rides: gradualGoal(city, domain.MonthsBetween(start, m))})
	}
	return out, nil
}

func gradualGoal(city domain.City, elapsed int) float64 {
	if elapsed < 0 {
		return 0
	}
	idx := min(elapsed, len(Curve)-1)
	base := math.Round(float64(city.TargetPopulation) * gradualPenetration)
	return base * Curve[idx]
}
