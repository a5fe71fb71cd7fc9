package dashboard

import (
	"context"

	db "expansion/db/sqlc"
	"expansion/internal/city"
	"expansion/internal/domain"
	"expansion/internal/projection"
)

type InterfaceService interface {
	GetDashboardService(ctx context.Context, from, to domain.MonthKey) (Response, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
}

func NewDashboardService(repo InterfaceRepository) *Service {
	return &Service{repo}
}

func (s *Service) GetDashboardService(ctx context.Context, from, to domain.MonthKey) (Response, error) {
	byStatus, err := s.InterfaceRepository.CountCitiesByStatus(ctx)
	if err != nil {
		return Response{}, err
	}
	rows, err := s.InterfaceRepository.ListCities(ctx)
	if err != nil {
		return Response{}, err
	}
	plans, err := s.InterfaceRepository.CountCityPlans(ctx)
	if err != nil {
		return Response{}, err
	}
	totals, err := s.InterfaceRepository.GetMonthlyTotals(ctx, db.GetMonthlyTotalsParams{
		FromMonth: string(from),
		ToMonth:   string(to),
	})
	if err != nil {
		return Response{}, err
	}

	cities := make([]domain.City, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, city.ToDomain(row))
	}

	result := Response{
		ByStatus:      map[domain.Status]int64{},
		Averages:      projection.StateAverages(cities),
		Plans:         plans,
		MonthlyTotals: convertMonthlyTotals(totals),
	}
	for _, row := range byStatus {
		result.ByStatus[domain.Status(row.Status)] = row.Total
	}
	for _, c := range cities {
		if c.Status.AtLeast(domain.StatusPlanning) {
			result.ActiveRevenue += projection.PotentialRevenue(c, projection.DefaultScenario)
		}
	}

	if n := len(result.MonthlyTotals); n >= 2 {
		last, prev := result.MonthlyTotals[n-1], result.MonthlyTotals[n-2]
		result.ComparisonPreviousMonthRides = percentChange(float64(prev.Rides), float64(last.Rides))
		result.ComparisonPreviousMonthTotalCost = percentChange(prev.TotalCost(), last.TotalCost())
	}
	return result, nil
}

// percentChange is 0 when there is no previous value to compare with.
func percentChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
