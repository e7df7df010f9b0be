package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/guitarkeep/hub/internal/models"
	"github.com/guitarkeep/hub/internal/repository"
)

// ReadingRepository is an in-memory reading store for tests and local demos.
// It applies the same filter, ordering and grouping rules as the SQL store.
type ReadingRepository struct {
	mu       sync.RWMutex
	readings []models.SensorReading
	err      error
}

// NewReadingRepository constructs a repository holding a copy of readings
func NewReadingRepository(readings ...models.SensorReading) *ReadingRepository {
	r := &ReadingRepository{}
	r.Add(readings...)
	return r
}

var _ repository.ReadingRepository = (*ReadingRepository)(nil)

// Add appends readings
func (r *ReadingRepository) Add(readings ...models.SensorReading) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings = append(r.readings, readings...)
}

// FailWith makes every subsequent call return err; nil restores normal reads
func (r *ReadingRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *ReadingRepository) Query(ctx context.Context, filter repository.ReadingFilter) ([]models.SensorReading, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	result := make([]models.SensorReading, 0, len(r.readings))
	for _, reading := range r.readings {
		if matches(filter, reading) {
			result = append(result, reading)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

type groupKey struct {
	room string
	data string
}

func (r *ReadingRepository) Aggregate(ctx context.Context, filter repository.ReadingFilter) ([]models.ReadingAverage, error) {
	if err := r.check(ctx); err != nil {
		return nil, err
	}

	sums := map[groupKey]float64{}
	counts := map[groupKey]int{}
	r.mu.RLock()
	for _, reading := range r.readings {
		if !matches(filter, reading) {
			continue
		}
		k := groupKey{room: reading.RoomType, data: reading.DataType}
		sums[k] += reading.Value
		counts[k]++
	}
	r.mu.RUnlock()

	result := make([]models.ReadingAverage, 0, len(sums))
	for k, sum := range sums {
		result = append(result, models.ReadingAverage{
			RoomType: k.room,
			DataType: k.data,
			Value:    sum / float64(counts[k]),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].RoomType != result[j].RoomType {
			return result[i].RoomType < result[j].RoomType
		}
		return result[i].DataType < result[j].DataType
	})
	return result, nil
}

func (r *ReadingRepository) Ping(ctx context.Context) error {
	return r.check(ctx)
}

func (r *ReadingRepository) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}

func matches(filter repository.ReadingFilter, reading models.SensorReading) bool {
	if len(filter.RoomTypes) > 0 {
		found := false
		for _, room := range filter.RoomTypes {
			if reading.RoomType == room {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.DataType != "" && reading.DataType != filter.DataType {
		return false
	}
	return filter.Range.Contains(reading.Timestamp)
}
