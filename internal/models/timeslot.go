package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeSlot is a fixed interval on a court/date that can be booked once.
// Start and end times are zero-padded "HH:MM" strings, so lexicographic
// comparison matches chronological order.
type TimeSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourtID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_time_slots_court_date_start" json:"court_id"`
	Court     *Court    `gorm:"foreignKey:CourtID;constraint:OnDelete:CASCADE" json:"court,omitempty"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_time_slots_court_date_start" json:"date"`
	StartTime string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_time_slots_court_date_start" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(5);not null" json:"end_time"`
	IsBooked  bool      `gorm:"not null;default:false" json:"is_booked"`
	CreatedAt time.Time `json:"created_at"`
}

func (TimeSlot) TableName() string { return "time_slots" }

// IntervalsOverlap reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Exact adjacency (aStart == bEnd or aEnd == bStart)
// is not an overlap.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// StartsAt combines the slot's date and start time into a single instant in
// the given location.
func (s *TimeSlot) StartsAt(loc *time.Location) (time.Time, error) {
	return CombineDateTime(s.Date, s.StartTime, loc)
}

// CombineDateTime builds the instant at hhmm ("HH:MM") on the calendar day of
// date, interpreted in loc.
func CombineDateTime(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// HourString formats an hour of day as a zero-padded "HH:00" slot boundary.
func HourString(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
