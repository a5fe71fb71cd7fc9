package city

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	db "expansion/db/sqlc"
	"expansion/internal/domain"
	"expansion/internal/projection"
	"go.uber.org/zap"
)

// StatusNotifier is told about every status change this service persists.
type StatusNotifier interface {
	NotifyStatus(cityID int64, from, to domain.Status)
}

type InterfaceService interface {
	ListCitiesService(ctx context.Context) ([]domain.City, error)
	GetCityService(ctx context.Context, id int64) (domain.City, error)
	UpsertCitiesService(ctx context.Context, data []CityRequest) ([]domain.City, error)
	UpdateStatusService(ctx context.Context, id int64, status domain.Status) (domain.City, error)
	UpdateDemographicsService(ctx context.Context, c domain.City) error
	ProjectionsService(ctx context.Context, id int64, penetration float64) (ProjectionsResponse, error)
	AveragesService(ctx context.Context) (projection.Averages, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	notifier            StatusNotifier
	log                 *zap.Logger
}

func NewCityService(repo InterfaceRepository, notifier StatusNotifier, log *zap.Logger) *Service {
	return &Service{InterfaceRepository: repo, notifier: notifier, log: log}
}

func (s *Service) ListCitiesService(ctx context.Context) ([]domain.City, error) {
	rows, err := s.InterfaceRepository.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.City, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToDomain(row))
	}
	return out, nil
}

func (s *Service) GetCityService(ctx context.Context, id int64) (domain.City, error) {
	row, err := s.InterfaceRepository.GetCityById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.City{}, fmt.Errorf("cidade %d: %w", id, domain.ErrCityNotFound)
	}
	if err != nil {
		return domain.City{}, err
	}
	return ToDomain(row), nil
}

func (s *Service) UpsertCitiesService(ctx context.Context, data []CityRequest) ([]domain.City, error) {
	params := make([]db.UpsertCityParams, 0, len(data))
	for i := range data {
		params = append(params, data[i].ParseToUpsertParams())
	}
	rows, err := s.InterfaceRepository.UpsertCities(ctx, params)
	if err != nil {
		return nil, err
	}
	out := make([]domain.City, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToDomain(row))
	}
	s.log.Info("cidades gravadas", zap.Int("count", len(out)))
	return out, nil
}

// UpdateStatusService changes only the status. Cities are never deleted: removal is a move back to NotServed.
func (s *Service) UpdateStatusService(ctx context.Context, id int64, status domain.Status) (domain.City, error) {
	current, err := s.GetCityService(ctx, id)
	if err != nil {
		return domain.City{}, err
	}

	n, err := s.InterfaceRepository.UpdateCityStatus(ctx, db.UpdateCityStatusParams{ID: id, Status: string(status)})
	if err != nil {
		return domain.City{}, err
	}
	if n == 0 {
		return domain.City{}, fmt.Errorf("cidade %d: %w", id, domain.ErrCityNotFound)
	}

	if current.Status != status {
		s.log.Info("status da cidade alterado",
			zap.Int64("city_id", id),
			zap.String("from", string(current.Status)),
			zap.String("to", string(status)))
		if s.notifier != nil {
			s.notifier.NotifyStatus(id, current.Status, status)
		}
	}
	current.Status = status
	return current, nil
}

// UpdateDemographicsService refreshes the IBGE indicators of a stored city.
// Name, status, implementation date and coordinates are left untouched.
func (s *Service) UpdateDemographicsService(ctx context.Context, c domain.City) error {
	n, err := s.InterfaceRepository.UpdateCityDemographics(ctx, db.UpdateCityDemographicsParams{
		ID:                  c.ID,
		Population:          c.Population,
		TargetPopulation:    c.TargetPopulation,
		AverageIncome:       c.AverageIncome,
		UrbanizationIndex:   c.UrbanizationIndex,
		AverageFormalSalary: c.AverageFormalSalary,
		FormalJobs:          c.FormalJobs,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("cidade %d: %w", c.ID, domain.ErrCityNotFound)
	}
	return nil
}

// ProjectionsService computes every projection for one city. A zero penetration uses the Medium scenario.
func (s *Service) ProjectionsService(ctx context.Context, id int64, penetration float64) (ProjectionsResponse, error) {
	c, err := s.GetCityService(ctx, id)
	if err != nil {
		return ProjectionsResponse{}, err
	}
	if penetration <= 0 {
		penetration = projection.Penetration(projection.DefaultScenario)
	}

	resp := ProjectionsResponse{
		City:       c,
		Potentials: projection.MarketPotentials(c),
		Revenue:    projection.PotentialRevenue(c, projection.DefaultScenario),
		Financial:  projection.FinancialProjections(c),
		Roadmap:    projection.GrowthRoadmap(c, penetration),
	}

	if start, ok := c.ImplementationStart(); ok {
		months := make([]domain.MonthKey, len(projection.Curve))
		for i := range months {
			months[i] = domain.MonthKeyOf(start.AddDate(0, i, 0))
		}
		goals, err := projection.GradualGoals(c, c.ImplementationStartDate, months)
		if err != nil {
			return ProjectionsResponse{}, err
		}
		resp.Goals = goals
	}
	return resp, nil
}

func (s *Service) AveragesService(ctx context.Context) (projection.Averages, error) {
	cities, err := s.ListCitiesService(ctx)
	if err != nil {
		return projection.Averages{}, err
	}
	return projection.StateAverages(cities), nil
}
