package plans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	db "expansion/db/sqlc"
	"expansion/internal/city"
	"expansion/internal/domain"
	"expansion/internal/projection"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InterfaceService interface {
	ListPlansService(ctx context.Context) ([]domain.PlanHeader, error)
	CreatePlanService(ctx context.Context, data CreatePlanRequest) (domain.PlanHeader, error)
	DeletePlanService(ctx context.Context, cityID int64) error
	GetResultsService(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.MonthResult, error)
	SaveResultsService(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error
	DeleteResultsService(ctx context.Context, cityID int64) error
	GetRealCostsService(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.RealCost, error)
	SaveRealCostsService(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error
	GetDetailsService(ctx context.Context, cityID int64) ([]domain.Phase, error)
	SaveDetailsService(ctx context.Context, cityID int64, phases []domain.Phase) error
	SummaryService(ctx context.Context, cityID int64) (SummaryResponse, error)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	log                 *zap.Logger
}

func NewPlanService(repo InterfaceRepository, log *zap.Logger) *Service {
	return &Service{InterfaceRepository: repo, log: log}
}

func (p *Service) ListPlansService(ctx context.Context) ([]domain.PlanHeader, error) {
	rows, err := p.InterfaceRepository.ListCityPlans(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PlanHeader, 0, len(rows))
	for _, row := range rows {
		out = append(out, HeaderFromRow(row))
	}
	return out, nil
}

func (p *Service) CreatePlanService(ctx context.Context, data CreatePlanRequest) (domain.PlanHeader, error) {
	if _, err := p.InterfaceRepository.GetCityById(ctx, data.CityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PlanHeader{}, fmt.Errorf("cidade %d: %w", data.CityID, domain.ErrCityNotFound)
		}
		return domain.PlanHeader{}, err
	}

	row, err := p.InterfaceRepository.UpsertCityPlan(ctx, data.ParseToUpsertParams())
	if err != nil {
		return domain.PlanHeader{}, err
	}
	p.log.Info("plano gravado", zap.Int64("city_id", row.CityID), zap.String("start_month", row.StartMonth))
	return HeaderFromRow(row), nil
}

func (p *Service) DeletePlanService(ctx context.Context, cityID int64) error {
	return p.InterfaceRepository.DeletePlan(ctx, cityID)
}

// GetResultsService returns the monthly results with the real costs merged in.
// A city without results gets an empty map.
func (p *Service) GetResultsService(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.MonthResult, error) {
	rows, err := p.InterfaceRepository.ListPlanResults(ctx, cityID)
	if err != nil {
		return nil, err
	}
	costs, err := p.GetRealCostsService(ctx, cityID)
	if err != nil {
		return nil, err
	}

	results := make(map[domain.MonthKey]domain.MonthResult, len(rows))
	for _, row := range rows {
		results[domain.MonthKey(row.Month)] = ResultFromRow(row)
	}
	return MergeRealCosts(results, costs), nil
}

// GetRealCostsService returns the recorded actual spend by month, empty when none.
func (p *Service) GetRealCostsService(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.RealCost, error) {
	rows, err := p.InterfaceRepository.ListPlanRealCosts(ctx, cityID)
	if err != nil {
		return nil, err
	}
	costs := make(map[domain.MonthKey]domain.RealCost, len(rows))
	for _, row := range rows {
		costs[domain.MonthKey(row.Month)] = domain.RealCost{
			MarketingCost:   row.MarketingCost,
			OperationalCost: row.OperationalCost,
		}
	}
	return costs, nil
}

// MergeRealCosts overlays real costs on the results. The overlaid month's actual
// cost fields take the real values; a month with no projected cost keeps its
// previous actuals as the projection.
func MergeRealCosts(results map[domain.MonthKey]domain.MonthResult, costs map[domain.MonthKey]domain.RealCost) map[domain.MonthKey]domain.MonthResult {
	out := maps.Clone(results)
	if out == nil {
		out = map[domain.MonthKey]domain.MonthResult{}
	}
	for month, c := range costs {
		r, existed := out[month]
		if existed {
			if r.ProjectedMarketingCost == nil {
				prev := r.MarketingCost
				r.ProjectedMarketingCost = &prev
			}
			if r.ProjectedOperationalCost == nil {
				prev := r.OperationalCost
				r.ProjectedOperationalCost = &prev
			}
		}
		r.MarketingCost = c.MarketingCost
		r.OperationalCost = c.OperationalCost
		out[month] = r
	}
	return out
}

func (p *Service) SaveResultsService(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error {
	return p.InterfaceRepository.UpsertPlanResults(ctx, cityID, results)
}

func (p *Service) DeleteResultsService(ctx context.Context, cityID int64) error {
	return p.InterfaceRepository.DeletePlanResults(ctx, cityID)
}

func (p *Service) SaveRealCostsService(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error {
	return p.InterfaceRepository.UpsertPlanRealCosts(ctx, cityID, costs)
}

// GetDetailsService returns nil when the plan has no stored phases.
func (p *Service) GetDetailsService(ctx context.Context, cityID int64) ([]domain.Phase, error) {
	row, err := p.InterfaceRepository.GetPlanDetails(ctx, cityID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodePhases(row.Phases)
}

func (p *Service) SaveDetailsService(ctx context.Context, cityID int64, phases []domain.Phase) error {
	raw, err := EncodePhases(phases)
	if err != nil {
		return err
	}
	return p.InterfaceRepository.UpsertPlanDetails(ctx, db.UpsertPlanDetailsParams{CityID: cityID, Phases: raw})
}

// SummaryService totals revenue, cost and goal attainment for every month with results.
// Goals count from the city's implementation month, or the plan start when unset.
func (p *Service) SummaryService(ctx context.Context, cityID int64) (SummaryResponse, error) {
	cityRow, err := p.InterfaceRepository.GetCityById(ctx, cityID)
	if errors.Is(err, sql.ErrNoRows) {
		return SummaryResponse{}, fmt.Errorf("cidade %d: %w", cityID, domain.ErrCityNotFound)
	}
	if err != nil {
		return SummaryResponse{}, err
	}
	c := city.ToDomain(cityRow)

	headers, err := p.ListPlansService(ctx)
	if err != nil {
		return SummaryResponse{}, err
	}
	i := slices.IndexFunc(headers, func(h domain.PlanHeader) bool { return h.CityID == cityID })
	if i < 0 {
		return SummaryResponse{}, domain.ErrPlanNotFound
	}
	header := headers[i]

	results, err := p.GetResultsService(ctx, cityID)
	if err != nil {
		return SummaryResponse{}, err
	}

	start := c.ImplementationStartDate
	if start == "" {
		start = string(header.StartMonth)
	}
	return Summarize(c, header.StartMonth, start, results)
}

// Summarize is the pure part of SummaryService.
func Summarize(c domain.City, startMonth domain.MonthKey, goalStart string, results map[domain.MonthKey]domain.MonthResult) (SummaryResponse, error) {
	price := decimal.NewFromFloat(projection.PricePerRide)
	resp := SummaryResponse{
		CityID:       c.ID,
		StartMonth:   startMonth,
		Months:       make([]MonthSummary, 0, len(results)),
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalMargin:  decimal.Zero,
		CostPerRide:  decimal.Zero,
	}

	for _, month := range slices.Sorted(maps.Keys(results)) {
		r := results[month]
		goal, err := projection.GradualMonthlyGoal(c, string(month), goalStart)
		if err != nil {
			return SummaryResponse{}, err
		}

		rides := decimal.NewFromInt(r.Rides)
		revenue := rides.Mul(price)
		cost := decimal.NewFromFloat(r.MarketingCost).Add(decimal.NewFromFloat(r.OperationalCost))
		goalDec := decimal.NewFromFloat(goal)
		attainment := decimal.Zero
		if goalDec.IsPositive() {
			attainment = rides.DivRound(goalDec, 4)
		}

		resp.Months = append(resp.Months, MonthSummary{
			Month:      month,
			Rides:      r.Rides,
			Goal:       goalDec.Round(2),
			Attainment: attainment,
			Revenue:    revenue.Round(2),
			Cost:       cost.Round(2),
			Margin:     revenue.Sub(cost).Round(2),
		})
		resp.TotalRides += r.Rides
		resp.TotalRevenue = resp.TotalRevenue.Add(revenue)
		resp.TotalCost = resp.TotalCost.Add(cost)
	}

	resp.TotalMargin = resp.TotalRevenue.Sub(resp.TotalCost).Round(2)
	if resp.TotalRides > 0 {
		resp.CostPerRide = resp.TotalCost.DivRound(decimal.NewFromInt(resp.TotalRides), 4)
	}
	resp.TotalRevenue = resp.TotalRevenue.Round(2)
	resp.TotalCost = resp.TotalCost.Round(2)
	return resp, nil
}
