package memory

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/guitarkeep/hub/internal/models"
	"github.com/guitarkeep/hub/internal/repository"
)

var base = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func at(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

func seed() *ReadingRepository {
	return NewReadingRepository(
		models.SensorReading{ID: 3, Timestamp: at(10), RoomType: "Kitchen", DataType: "Temperature", Value: 22, Source: "s1"},
		models.SensorReading{ID: 1, Timestamp: at(0), RoomType: "Outside", DataType: "Rainfall", Value: 0.2, Source: "s2"},
		models.SensorReading{ID: 2, Timestamp: at(10), RoomType: "Kitchen", DataType: "Temperature", Value: 24, Source: "s1"},
		models.SensorReading{ID: 4, Timestamp: at(20), RoomType: "Bedroom", DataType: "Humidity", Value: 50, Source: "s3"},
	)
}

func ids(readings []models.SensorReading) []int64 {
	out := make([]int64, 0, len(readings))
	for _, r := range readings {
		out = append(out, r.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQueryOrdersByTimestampThenID(t *testing.T) {
	got, err := seed().Query(context.Background(), repository.ReadingFilter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if want := []int64{1, 2, 3, 4}; !equalIDs(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestQueryFilters(t *testing.T) {
	start, end := at(10), at(10)
	cases := []struct {
		name   string
		filter repository.ReadingFilter
		want   []int64
	}{
		{"room types OR", repository.ReadingFilter{RoomTypes: []string{"Kitchen", "Outside"}}, []int64{1, 2, 3}},
		{"data type", repository.ReadingFilter{DataType: "Humidity"}, []int64{4}},
		{"instant range", repository.ReadingFilter{Range: models.TimeRange{Start: &start, End: &end}}, []int64{2, 3}},
		{"no match", repository.ReadingFilter{DataType: "Light"}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := seed().Query(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			if got == nil {
				t.Fatalf("expected empty slice, not nil")
			}
			if !equalIDs(ids(got), tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, ids(got))
			}
		})
	}
}

func TestAggregateGroupsAndOrders(t *testing.T) {
	got, err := seed().Aggregate(context.Background(), repository.ReadingFilter{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := []models.ReadingAverage{
		{RoomType: "Bedroom", DataType: "Humidity", Value: 50},
		{RoomType: "Kitchen", DataType: "Temperature", Value: 23},
		{RoomType: "Outside", DataType: "Rainfall", Value: 0.2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d groups, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("group %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestFailuresAndCancellation(t *testing.T) {
	repo := seed()
	boom := stderrors.New("store down")
	repo.FailWith(boom)
	if _, err := repo.Query(context.Background(), repository.ReadingFilter{}); !stderrors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if err := repo.Ping(context.Background()); !stderrors.Is(err, boom) {
		t.Fatalf("expected injected error from Ping, got %v", err)
	}
	repo.FailWith(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.Aggregate(ctx, repository.ReadingFilter{}); !stderrors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
