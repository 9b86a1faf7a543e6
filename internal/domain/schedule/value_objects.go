package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
)

// TimeOfDay is a wall-clock slot start in minutes since midnight,
// tenant-local. The engine is single-timezone per tenant and never
// converts between zones.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses the wire format "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &hour, &minute); err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t > other }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ParseDate parses the wire format "YYYY-MM-DD" into a civil date
// (midnight UTC).
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format("2006-01-02")
}

// SameDate compares civil dates ignoring any clock component.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
