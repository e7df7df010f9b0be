package postgres

import (
	"context"
	"time"

	"github.com/guitarkeep/hub/internal/database"
	"github.com/jmoiron/sqlx"
)

type PostgresBaseRepo struct {
	db      database.DB
	timeout time.Duration
}

// read runs fn in a read-only scope bounded by the repository query timeout
func (r *PostgresBaseRepo) read(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.db.ReadScope(ctx, func(tx *sqlx.Tx) error {
		return fn(ctx, tx)
	})
}

func (r *PostgresBaseRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *PostgresBaseRepo) Close() error {
	return r.db.Close()
}
