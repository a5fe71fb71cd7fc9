package city

import (
	"context"
	"database/sql"
	"fmt"

	db "expansion/db/sqlc"
)

type InterfaceRepository interface {
	ListCities(ctx context.Context) ([]db.City, error)
	GetCityById(ctx context.Context, id int64) (db.City, error)
	UpsertCities(ctx context.Context, arg []db.UpsertCityParams) ([]db.City, error)
	UpdateCityStatus(ctx context.Context, arg db.UpdateCityStatusParams) (int64, error)
	UpdateCityDemographics(ctx context.Context, arg db.UpdateCityDemographicsParams) (int64, error)
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewCityRepository(conn *sql.DB) *Repository {
	return &Repository{
		Conn:    conn,
		Queries: db.New(conn),
	}
}

func (r *Repository) ListCities(ctx context.Context) ([]db.City, error) {
	return r.Queries.ListCities(ctx)
}

func (r *Repository) GetCityById(ctx context.Context, id int64) (db.City, error) {
	return r.Queries.GetCityById(ctx, id)
}

// UpsertCities writes every city in one transaction.
func (r *Repository) UpsertCities(ctx context.Context, arg []db.UpsertCityParams) ([]db.City, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	q := r.Queries.WithTx(tx)
	out := make([]db.City, 0, len(arg))
	for _, params := range arg {
		row, err := q.UpsertCity(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("cidade %d: %w", params.ID, err)
		}
		out = append(out, row)
	}
	return out, tx.Commit()
}

func (r *Repository) UpdateCityStatus(ctx context.Context, arg db.UpdateCityStatusParams) (int64, error) {
	return r.Queries.UpdateCityStatus(ctx, arg)
}

func (r *Repository) UpdateCityDemographics(ctx context.Context, arg db.UpdateCityDemographicsParams) (int64, error) {
	return r.Queries.UpdateCityDemographics(ctx, arg)
}
