// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/guitarkeep/hub/internal/models"
)

// ReadingFilter selects stored readings. Zero fields do not filter.
type ReadingFilter struct {
	// RoomTypes are OR-combined equality matches on the stored room type
	RoomTypes []string
	// DataType is an exact match on the stored data type
	DataType string
	// Range bounds the timestamp, both ends inclusive
	Range models.TimeRange
}

// ReadingRepository defines the read access to stored sensor readings
type ReadingRepository interface {
	// Query returns the matching readings ordered by timestamp, then id
	Query(ctx context.Context, filter ReadingFilter) ([]models.SensorReading, error)
	// Aggregate returns the mean value per (room type, data type) group of
	// the matching readings, ordered by room type then data type
	Aggregate(ctx context.Context, filter ReadingFilter) ([]models.ReadingAverage, error)
	// Ping checks that the store answers a trivial query
	Ping(ctx context.Context) error
}
