package analytics

import (
	"context"
	"errors"
	"time"

	"expansion/infra/metrics"
	"expansion/internal/domain"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tableRides      = "rides"
	statusCompleted = "completed"
)

var ErrDisabled = errors.New("banco de análise não configurado")

type InterfaceRepository interface {
	MonthlyRides(ctx context.Context, names []string, from, to domain.MonthKey) ([]MonthlyRides, error)
}

type Repository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository accepts a nil pool; every query then fails with ErrDisabled.
func NewAnalyticsRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// monthlyRidesQuery counts completed rides per month for any of the names, in [from, to].
func monthlyRidesQuery(names []string, from, to domain.MonthKey) squirrel.SelectBuilder {
	end := to.Time().AddDate(0, 1, 0)
	return builder().
		Select(
			"date_trunc('month', completed_at) AS month",
			"count(*) AS rides",
			"COALESCE(sum(fare), 0)::float8 AS revenue",
			"count(DISTINCT driver_id) AS drivers",
		).
		From(tableRides).
		Where(squirrel.Eq{"lower(city_name)": names}).
		Where(squirrel.Eq{"status": statusCompleted}).
		Where(squirrel.GtOrEq{"completed_at": from.Time()}).
		Where(squirrel.Lt{"completed_at": end}).
		GroupBy("1").
		OrderBy("1")
}

func (r *Repository) MonthlyRides(ctx context.Context, names []string, from, to domain.MonthKey) ([]MonthlyRides, error) {
	if r.pool == nil {
		return nil, ErrDisabled
	}
	query, args, err := monthlyRidesQuery(names, from, to).ToSql()
	if err != nil {
		return nil, err
	}

	started := time.Now()
	defer func() {
		metrics.AnalyticsQueryDuration.WithLabelValues("monthly_rides").Observe(time.Since(started).Seconds())
	}()

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[ridesRow])
	if err != nil {
		return nil, err
	}

	out := make([]MonthlyRides, 0, len(collected))
	for _, row := range collected {
		out = append(out, MonthlyRides{
			Month:   domain.MonthKeyOf(row.Month),
			Rides:   row.Rides,
			Revenue: row.Revenue,
			Drivers: row.Drivers,
		})
	}
	return out, nil
}
