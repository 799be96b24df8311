package availability

import (
	"errors"
	"time"
)

var (
	ErrInvalidService = errors.New("service duration must be a positive number of minutes")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidWindow  = errors.New("invalid availability window configuration")
)

// Config bounds the working day and the granularity of candidate start times.
type Config struct {
	WindowStartHour int
	WindowEndHour   int
	StepMinutes     int
}

// Interval is a booked [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any instant.
// Intervals are half-open, so touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// ParseDate parses a YYYY-MM-DD calendar date in the given location.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

// Slots computes the ordered candidate start times on the given day at which
// a booking of durationMinutes would not overlap any booked interval.
// Candidates run from the window start in StepMinutes increments while the
// slot end still fits inside the window. The result is ascending and may be
// empty; an empty booked set just means every candidate is free.
func Slots(durationMinutes int, day time.Time, booked []Interval, cfg Config) ([]time.Time, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidService
	}
	if cfg.StepMinutes <= 0 || cfg.WindowStartHour < 0 || cfg.WindowEndHour > 24 ||
		cfg.WindowEndHour <= cfg.WindowStartHour {
		return nil, ErrInvalidWindow
	}

	loc := day.Location()
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), cfg.WindowStartHour, 0, 0, 0, loc)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), cfg.WindowEndHour, 0, 0, 0, loc)

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(cfg.StepMinutes) * time.Minute

	var slots []time.Time
	for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(step) {
		if !conflicts(t, t.Add(duration), booked) {
			slots = append(slots, t)
		}
	}

	return slots, nil
}

func conflicts(start, end time.Time, booked []Interval) bool {
	for _, b := range booked {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
