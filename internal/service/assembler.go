package service

import (
	"github.com/guitarkeep/hub/internal/category"
	"github.com/guitarkeep/hub/internal/models"
)

// assembleEntries maps rows one to one, in order, attaching the tip of each.
func (s *Service) assembleEntries(readings []models.SensorReading) []models.QueryResultEntry {
	entries := make([]models.QueryResultEntry, 0, len(readings))
	for _, r := range readings {
		entries = append(entries, models.QueryResultEntry{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			RoomType:  r.RoomType,
			DataType:  r.DataType,
			Value:     r.Value,
			Source:    r.Source,
			Tip:       s.tipFor(r.RoomType, r.DataType, r.Value),
		})
	}
	return entries
}

func (s *Service) assembleAverages(averages []models.ReadingAverage) []models.AggregatedEntry {
	entries := make([]models.AggregatedEntry, 0, len(averages))
	for _, a := range averages {
		entries = append(entries, models.AggregatedEntry{
			RoomType: a.RoomType,
			DataType: a.DataType,
			Value:    a.Value,
			Tip:      s.tipFor(a.RoomType, a.DataType, a.Value),
		})
	}
	return entries
}

// tipFor classifies a stored triple. Stored values are display names, the
// classifier works on identifiers.
func (s *Service) tipFor(roomType, dataType string, value float64) *string {
	dataID := category.IdentifierFor(dataType)
	verdict := s.classifier.Evaluate(category.IdentifierFor(roomType), dataID, value)
	s.recorder.RecordTip(dataID, string(verdict.Outcome))
	return &verdict.Message
}
