// FilePath: internal/repository/postgres/postgres.readings.go
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guitarkeep/hub/internal/database"
	"github.com/guitarkeep/hub/internal/models"
	"github.com/guitarkeep/hub/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	nuts "github.com/vaudience/go-nuts"
)

const readingColumns = `"Id", ts, "roomType", "dataType", value, source`

// ReadingRepo reads sensor readings from the datawarehouse table
type ReadingRepo struct {
	PostgresBaseRepo
	table string
}

// NewReadingRepository creates a PostgreSQL-backed reading repository.
// queryTimeout bounds every read; zero leaves only the caller's context.
func NewReadingRepository(db database.DB, table string, queryTimeout time.Duration) *ReadingRepo {
	return &ReadingRepo{
		PostgresBaseRepo: PostgresBaseRepo{db: db, timeout: queryTimeout},
		table:            pq.QuoteIdentifier(table),
	}
}

var _ repository.ReadingRepository = (*ReadingRepo)(nil)

func (r *ReadingRepo) Query(ctx context.Context, filter repository.ReadingFilter) ([]models.SensorReading, error) {
	query, args, err := buildSelectQuery(r.table, filter)
	if err != nil {
		return nil, database.Classify("failed to build readings query", err)
	}

	readings := []models.SensorReading{}
	err = r.read(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &readings, tx.Rebind(query), args...)
	})
	if err != nil {
		nuts.L.Errorf("[ReadingRepo] Query failed: %v", err)
		return nil, database.Classify("failed to get sensor readings", err)
	}
	return readings, nil
}

func (r *ReadingRepo) Aggregate(ctx context.Context, filter repository.ReadingFilter) ([]models.ReadingAverage, error) {
	query, args, err := buildAggregateQuery(r.table, filter)
	if err != nil {
		return nil, database.Classify("failed to build aggregate query", err)
	}

	averages := []models.ReadingAverage{}
	err = r.read(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		return tx.SelectContext(ctx, &averages, tx.Rebind(query), args...)
	})
	if err != nil {
		nuts.L.Errorf("[ReadingRepo] Aggregate failed: %v", err)
		return nil, database.Classify("failed to get sensor averages", err)
	}
	return averages, nil
}

// buildWhere renders the filter with ? placeholders, expanding the room type
// list through sqlx.In.
func buildWhere(filter repository.ReadingFilter) (string, []interface{}, error) {
	clauses := []string{}
	args := []interface{}{}

	if len(filter.RoomTypes) > 0 {
		clause, inArgs, err := sqlx.In(`"roomType" IN (?)`, filter.RoomTypes)
		if err != nil {
			return "", nil, fmt.Errorf("expand room types: %w", err)
		}
		clauses = append(clauses, clause)
		args = append(args, inArgs...)
	}
	if filter.DataType != "" {
		clauses = append(clauses, `"dataType" = ?`)
		args = append(args, filter.DataType)
	}
	if filter.Range.Start != nil {
		clauses = append(clauses, `ts >= ?`)
		args = append(args, *filter.Range.Start)
	}
	if filter.Range.End != nil {
		clauses = append(clauses, `ts <= ?`)
		args = append(args, *filter.Range.End)
	}

	if len(clauses) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func buildSelectQuery(table string, filter repository.ReadingFilter) (string, []interface{}, error) {
	where, args, err := buildWhere(filter)
	if err != nil {
		return "", nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY ts ASC, "Id" ASC`, readingColumns, table, where)
	return query, args, nil
}

func buildAggregateQuery(table string, filter repository.ReadingFilter) (string, []interface{}, error) {
	where, args, err := buildWhere(filter)
	if err != nil {
		return "", nil, err
	}
	query := fmt.Sprintf(
		`SELECT "roomType", "dataType", AVG(value) AS value FROM %s%s GROUP BY "roomType", "dataType" ORDER BY "roomType" ASC, "dataType" ASC`,
		table, where)
	return query, args, nil
}
