package models

import "time"

// TimeRange is an optional, inclusive timestamp window. A nil bound is open.
type TimeRange struct {
	Start *time.Time `json:"start_time,omitempty"`
	End   *time.Time `json:"end_time,omitempty"`
}

// Empty reports whether the range cannot contain any instant.
func (r TimeRange) Empty() bool {
	return r.Start != nil && r.End != nil && r.Start.After(*r.End)
}

// Contains reports whether ts lies within the range, bounds included.
func (r TimeRange) Contains(ts time.Time) bool {
	if r.Start != nil && ts.Before(*r.Start) {
		return false
	}
	if r.End != nil && ts.After(*r.End) {
		return false
	}
	return true
}
