// FilePath: internal/database/database.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guitarkeep/hub/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	nuts "github.com/vaudience/go-nuts"
)

// DB is the session provider every repository reads through
type DB interface {
	Close() error
	Ping(ctx context.Context) error
	ReadScope(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	GetDB() *sqlx.DB
}

// PostgresDB represents a PostgreSQL database connection pool
type PostgresDB struct {
	db *sqlx.DB
}

// Open creates the connection pool for cfg and verifies it with a ping.
// Nothing is opened lazily: callers own the returned handle and must Close it.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*PostgresDB, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening %s connection: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, Classify("error connecting to PostgreSQL", err)
	}

	nuts.L.Infof("[PostgresDB] Connected via %s to %s:%d/%s", cfg.Driver, cfg.Host, cfg.Port, cfg.DBName)
	return &PostgresDB{db: db}, nil
}

// New wraps an already opened pool
func New(db *sqlx.DB) *PostgresDB {
	return &PostgresDB{db: db}
}

// ReadScope runs fn inside a read-only transaction. The transaction is always
// finished and its connection returned to the pool, whether fn succeeds,
// fails, panics or ctx is cancelled.
func (p *PostgresDB) ReadScope(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := p.db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return Classify("failed to begin transaction", err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			nuts.L.Warnf("[PostgresDB] Rollback failed: %v", rbErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return Classify("failed to commit transaction", err)
	}
	committed = true
	return nil
}

// Ping round-trips a SELECT 1 through a read scope
func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.ReadScope(ctx, func(tx *sqlx.Tx) error {
		var one int
		if err := tx.GetContext(ctx, &one, "SELECT 1"); err != nil {
			return Classify("failed to ping database", err)
		}
		return nil
	})
}

// Close releases the pool
func (p *PostgresDB) Close() error {
	return p.db.Close()
}

// GetDB exposes the underlying pool
func (p *PostgresDB) GetDB() *sqlx.DB {
	return p.db
}
