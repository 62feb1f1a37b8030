package domain

import "time"

// TrackingEvent is one immutable record in a parcel's history. Once
// recorded it is never edited or deleted.
type TrackingEvent struct {
	Status      ParcelStatus `json:"status" bson:"status"`
	Location    string       `json:"location" bson:"location"`
	Description string       `json:"description" bson:"description"`
	Timestamp   time.Time    `json:"timestamp" bson:"timestamp"`
}

// AppendEvent returns a new history with the event appended. Timestamps
// are monotonically non-decreasing per parcel: if the wall clock went
// backwards relative to the previous entry, the new timestamp is
// clamped to previous + 1ms rather than reordered.
func AppendEvent(history []TrackingEvent, status ParcelStatus, location, description string, now time.Time) []TrackingEvent {
	ts := now
	if n := len(history); n > 0 {
		if prev := history[n-1].Timestamp; ts.Before(prev) {
			ts = prev.Add(time.Millisecond)
		}
	}

	out := make([]TrackingEvent, len(history), len(history)+1)
	copy(out, history)
	return append(out, TrackingEvent{
		Status:      status,
		Location:    location,
		Description: description,
		Timestamp:   ts,
	})
}
