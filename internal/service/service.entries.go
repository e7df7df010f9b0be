package service

import (
	"context"
	"time"

	"github.com/guitarkeep/hub/internal/cache"
	"github.com/guitarkeep/hub/internal/category"
	"github.com/guitarkeep/hub/internal/models"
	"github.com/guitarkeep/hub/internal/repository"
)

const (
	opListEntries       = "list_entries"
	opListByRoomType    = "list_entries_by_room_type"
	opListByDataType    = "list_entries_by_data_type"
	opAverageAll        = "average_all"
	opAverageByRoomType = "average_by_room_type"
	opHealth            = "health"
)

// ListEntries returns every reading within r, oldest first
func (s *Service) ListEntries(ctx context.Context, r models.TimeRange) ([]models.QueryResultEntry, error) {
	filter := repository.ReadingFilter{Range: r}
	return s.listEntries(ctx, opListEntries, cache.EntriesKey(cache.ScopeEntries, "", r), filter)
}

// ListEntriesByRoomType returns the readings of one room type together with
// the readings taken outside. roomType may be an identifier or a display name.
func (s *Service) ListEntriesByRoomType(ctx context.Context, roomType string, r models.TimeRange) ([]models.QueryResultEntry, error) {
	room, err := s.categories.Rooms.Resolve(roomType)
	if err != nil {
		return nil, err
	}
	filter := repository.ReadingFilter{RoomTypes: broadenedRooms(room), Range: r}
	return s.listEntries(ctx, opListByRoomType, cache.EntriesKey(cache.ScopeEntriesByRoom, room.Name, r), filter)
}

// ListEntriesByDataType returns the readings of exactly one data type
func (s *Service) ListEntriesByDataType(ctx context.Context, dataType string, r models.TimeRange) ([]models.QueryResultEntry, error) {
	data, err := s.categories.Data.Resolve(dataType)
	if err != nil {
		return nil, err
	}
	filter := repository.ReadingFilter{DataType: data.Name, Range: r}
	return s.listEntries(ctx, opListByDataType, cache.EntriesKey(cache.ScopeEntriesByData, data.Name, r), filter)
}

func (s *Service) listEntries(ctx context.Context, op, key string, filter repository.ReadingFilter) ([]models.QueryResultEntry, error) {
	if filter.Range.Empty() {
		return []models.QueryResultEntry{}, nil
	}

	entries := []models.QueryResultEntry{}
	if s.fromCache(ctx, op, key, &entries) {
		return entries, nil
	}

	started := time.Now()
	readings, err := s.readings.Query(ctx, filter)
	s.recorder.ObserveQuery(op, started, err)
	if err != nil {
		s.notifyStoreFailure(op, err)
		return nil, err
	}

	entries = s.assembleEntries(readings)
	s.toCache(ctx, op, key, entries)
	return entries, nil
}

// broadenedRooms is the room filter of a room-scoped query: the room itself
// and Outside.
func broadenedRooms(room category.Category) []string {
	if room.Name == category.Outside {
		return []string{category.Outside}
	}
	return []string{room.Name, category.Outside}
}

func (s *Service) fromCache(ctx context.Context, op, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.notifyCacheFailure(op, err)
		return false
	}
	return found
}

func (s *Service) toCache(ctx context.Context, op, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.notifyCacheFailure(op, err)
	}
}
