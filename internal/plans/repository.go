package plans

import (
	"context"
	"database/sql"
	"maps"
	"slices"

	db "expansion/db/sqlc"
	"expansion/internal/domain"
)

type InterfaceRepository interface {
	GetCityById(ctx context.Context, id int64) (db.City, error)
	ListCityPlans(ctx context.Context) ([]db.CityPlan, error)
	UpsertCityPlan(ctx context.Context, arg db.UpsertCityPlanParams) (db.CityPlan, error)
	DeletePlan(ctx context.Context, cityID int64) error
	ListPlanResults(ctx context.Context, cityID int64) ([]db.CityPlanResult, error)
	UpsertPlanResults(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error
	DeletePlanResults(ctx context.Context, cityID int64) error
	ListPlanRealCosts(ctx context.Context, cityID int64) ([]db.CityPlanRealCost, error)
	UpsertPlanRealCosts(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error
	GetPlanDetails(ctx context.Context, cityID int64) (db.CityPlanDetail, error)
	UpsertPlanDetails(ctx context.Context, arg db.UpsertPlanDetailsParams) error
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewPlanRepository(conn *sql.DB) *Repository {
	return &Repository{
		Conn:    conn,
		Queries: db.New(conn),
	}
}

func (r *Repository) inTx(ctx context.Context, fn func(q *db.Queries) error) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if err := fn(r.Queries.WithTx(tx)); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *Repository) GetCityById(ctx context.Context, id int64) (db.City, error) {
	return r.Queries.GetCityById(ctx, id)
}

func (r *Repository) ListCityPlans(ctx context.Context) ([]db.CityPlan, error) {
	return r.Queries.ListCityPlans(ctx)
}

func (r *Repository) UpsertCityPlan(ctx context.Context, arg db.UpsertCityPlanParams) (db.CityPlan, error) {
	return r.Queries.UpsertCityPlan(ctx, arg)
}

// DeletePlan removes the plan header and its phase details.
func (r *Repository) DeletePlan(ctx context.Context, cityID int64) error {
	return r.inTx(ctx, func(q *db.Queries) error {
		if err := q.DeletePlanDetails(ctx, cityID); err != nil {
			return err
		}
		return q.DeleteCityPlan(ctx, cityID)
	})
}

func (r *Repository) ListPlanResults(ctx context.Context, cityID int64) ([]db.CityPlanResult, error) {
	return r.Queries.ListPlanResults(ctx, cityID)
}

func (r *Repository) UpsertPlanResults(ctx context.Context, cityID int64, results map[domain.MonthKey]domain.MonthResult) error {
	return r.inTx(ctx, func(q *db.Queries) error {
		for _, month := range slices.Sorted(maps.Keys(results)) {
			if err := q.UpsertPlanResult(ctx, ResultParams(cityID, month, results[month])); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePlanResults removes the monthly results and the real-cost overlay.
func (r *Repository) DeletePlanResults(ctx context.Context, cityID int64) error {
	return r.inTx(ctx, func(q *db.Queries) error {
		if err := q.DeletePlanRealCosts(ctx, cityID); err != nil {
			return err
		}
		return q.DeletePlanResults(ctx, cityID)
	})
}

func (r *Repository) ListPlanRealCosts(ctx context.Context, cityID int64) ([]db.CityPlanRealCost, error) {
	return r.Queries.ListPlanRealCosts(ctx, cityID)
}

func (r *Repository) UpsertPlanRealCosts(ctx context.Context, cityID int64, costs map[domain.MonthKey]domain.RealCost) error {
	return r.inTx(ctx, func(q *db.Queries) error {
		for _, month := range slices.Sorted(maps.Keys(costs)) {
			c := costs[month]
			if err := q.UpsertPlanRealCost(ctx, db.UpsertPlanRealCostParams{
				CityID:          cityID,
				Month:           string(month),
				MarketingCost:   c.MarketingCost,
				OperationalCost: c.OperationalCost,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) GetPlanDetails(ctx context.Context, cityID int64) (db.CityPlanDetail, error) {
	return r.Queries.GetPlanDetails(ctx, cityID)
}

func (r *Repository) UpsertPlanDetails(ctx context.Context, arg db.UpsertPlanDetailsParams) error {
	return r.Queries.UpsertPlanDetails(ctx, arg)
}
