package reconcile

import (
	"context"

	"expansion/internal/domain"
)

// Backend is the backend-of-record the Store reads from and writes through to.
// Reads of missing records return empty values, not errors.
type Backend interface {
	ListCities(ctx context.Context) ([]domain.City, error)
	SaveCities(ctx context.Context, cities []domain.City) error
	UpdateCityStatus(ctx context.Context, cityID int64, status domain.Status) error

	ListPlans(ctx context.Context) ([]domain.PlanHeader, error)
	CreatePlan(ctx context.Context, header domain.PlanHeader) (domain.PlanHeader, error)
	DeletePlan(ctx context.Context, cityID int64) error

	GetPlanResults(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.MonthResult, error)
	SavePlanResults(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error
	DeletePlanResults(ctx context.Context, cityID int64) error
	GetPlanRealCosts(ctx context.Context, cityID int64) (map[domain.MonthKey]domain.RealCost, error)
	SaveRealCosts(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error

	// GetPlanDetails returns nil phases when none were persisted.
	GetPlanDetails(ctx context.Context, cityID int64) ([]domain.Phase, error)
	SavePlanDetails(ctx context.Context, cityID int64, phases []domain.Phase) error

	ListBlocks(ctx context.Context) ([]domain.MarketBlock, error)
	SaveBlocks(ctx context.Context, blocks []domain.MarketBlock) error
}
