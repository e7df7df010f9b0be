// FilePath: internal/models/models.entries.go
package models

import "time"

// QueryResultEntry is a stored reading as returned by the query API
type QueryResultEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	RoomType  string    `json:"room_type"`
	DataType  string    `json:"data_type"`
	Value     float64   `json:"value"`
	Source    string    `json:"source"`
	Tip       *string   `json:"tip,omitempty"`
}

// AggregatedEntry is the average of a (room type, data type) group
type AggregatedEntry struct {
	RoomType string  `json:"room_type"`
	DataType string  `json:"data_type"`
	Value    float64 `json:"value"`
	Tip      *string `json:"tip,omitempty"`
}

// CategoryInfo describes one configured room or data type
type CategoryInfo struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// CategoryListing holds the configured categories in configured order
type CategoryListing struct {
	RoomTypes []CategoryInfo `json:"room_types"`
	DataTypes []CategoryInfo `json:"data_types"`
}
