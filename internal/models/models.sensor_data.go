// FilePath: internal/models/models.sensor_data.go
package models

import "time"

// SensorReading represents a single stored sensor measurement
type SensorReading struct {
	ID        int64     `json:"id" db:"Id"`
	Timestamp time.Time `json:"timestamp" db:"ts"`
	RoomType  string    `json:"room_type" db:"roomType"`
	DataType  string    `json:"data_type" db:"dataType"`
	Value     float64   `json:"value" db:"value"`
	Source    string    `json:"source" db:"source"`
}

// ReadingAverage is the mean value of one (room type, data type) group
type ReadingAverage struct {
	RoomType string  `json:"room_type" db:"roomType"`
	DataType string  `json:"data_type" db:"dataType"`
	Value    float64 `json:"value" db:"value"`
}
