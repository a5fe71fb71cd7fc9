package dashboard

import (
	"context"
	"database/sql"

	db "expansion/db/sqlc"
)

type InterfaceRepository interface {
	CountCitiesByStatus(ctx context.Context) ([]db.CountCitiesByStatusRow, error)
	CountCityPlans(ctx context.Context) (int64, error)
	ListCities(ctx context.Context) ([]db.City, error)
	GetMonthlyTotals(ctx context.Context, arg db.GetMonthlyTotalsParams) ([]db.GetMonthlyTotalsRow, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewDashboardRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) CountCitiesByStatus(ctx context.Context) ([]db.CountCitiesByStatusRow, error) {
	return r.Queries.CountCitiesByStatus(ctx)
}

func (r *Repository) CountCityPlans(ctx context.Context) (int64, error) {
	return r.Queries.CountCityPlans(ctx)
}

func (r *Repository) ListCities(ctx context.Context) ([]db.City, error) {
	return r.Queries.ListCities(ctx)
}

func (r *Repository) GetMonthlyTotals(ctx context.Context, arg db.GetMonthlyTotalsParams) ([]db.GetMonthlyTotalsRow, error) {
	return r.Queries.GetMonthlyTotals(ctx, arg)
}
