package blocks

import (
	"context"
	"database/sql"

	db "expansion/db/sqlc"
)

type InterfaceRepository interface {
	ListMarketBlocks(ctx context.Context) ([]db.MarketBlock, error)
	ReplaceMarketBlocks(ctx context.Context, arg []db.InsertMarketBlockParams) error
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewBlockRepository(conn *sql.DB) *Repository {
	return &Repository{
		Conn:    conn,
		Queries: db.New(conn),
	}
}

func (r *Repository) ListMarketBlocks(ctx context.Context) ([]db.MarketBlock, error) {
	return r.Queries.ListMarketBlocks(ctx)
}

// ReplaceMarketBlocks swaps the whole collection in one transaction.
func (r *Repository) ReplaceMarketBlocks(ctx context.Context, arg []db.InsertMarketBlockParams) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := r.Queries.WithTx(tx)
	if err := q.DeleteAllMarketBlocks(ctx); err != nil {
		return err
	}
	for _, params := range arg {
		if err := q.InsertMarketBlock(ctx, params); err != nil {
			return err
		}
	}
	return tx.Commit()
}
