package service

import (
	"context"
	"time"

	"github.com/guitarkeep/hub/internal/cache"
	"github.com/guitarkeep/hub/internal/models"
	"github.com/guitarkeep/hub/internal/repository"
)

// AverageAll returns the mean value of every (room type, data type) group
func (s *Service) AverageAll(ctx context.Context) ([]models.AggregatedEntry, error) {
	return s.average(ctx, opAverageAll, cache.AveragesKey(cache.ScopeAveragesAll, ""), repository.ReadingFilter{})
}

// AverageByRoomType averages the readings of one room type and of Outside,
// grouped by (room type, data type). Time bounds do not apply.
func (s *Service) AverageByRoomType(ctx context.Context, roomType string) ([]models.AggregatedEntry, error) {
	room, err := s.categories.Rooms.Resolve(roomType)
	if err != nil {
		return nil, err
	}
	filter := repository.ReadingFilter{RoomTypes: broadenedRooms(room)}
	return s.average(ctx, opAverageByRoomType, cache.AveragesKey(cache.ScopeAveragesByRoom, room.Name), filter)
}

func (s *Service) average(ctx context.Context, op, key string, filter repository.ReadingFilter) ([]models.AggregatedEntry, error) {
	entries := []models.AggregatedEntry{}
	if s.fromCache(ctx, op, key, &entries) {
		return entries, nil
	}

	started := time.Now()
	averages, err := s.readings.Aggregate(ctx, filter)
	s.recorder.ObserveQuery(op, started, err)
	if err != nil {
		s.notifyStoreFailure(op, err)
		return nil, err
	}

	entries = s.assembleAverages(averages)
	s.toCache(ctx, op, key, entries)
	return entries, nil
}

// Categories lists the configured room and data types
func (s *Service) Categories() models.CategoryListing {
	return s.categories.Listing()
}
