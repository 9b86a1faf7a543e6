package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Slot is one bookable start time with its capacity accounting at the
// moment of computation.
type Slot struct {
	Start    TimeOfDay
	Capacity int
	Occupied int
}

func (s Slot) Remaining() int {
	return s.Capacity - s.Occupied
}

// DaySchedule is everything the calculator needs for one (tenant, service,
// date): the weekday template, applicable overrides, the service duration
// and the current occupied counts (pending + approved appointments).
type DaySchedule struct {
	TenantID        uuid.UUID
	ServiceID       uuid.UUID
	Date            time.Time
	Template        SlotTemplate
	Overrides       []CapacityOverride
	DurationMinutes int
	Occupied        map[TimeOfDay]int
}

// ComputeSlots walks the template interval from rangeStart to rangeEnd and
// keeps candidates that (a) finish before closing once the service duration
// is applied and (b) still have capacity left. It is a pure function:
// callers feed it a snapshot and get a deterministic ordered result.
//
// rangeStart/rangeEnd default to the template's open/close window and may
// only narrow it.
func ComputeSlots(day DaySchedule, rangeStart, rangeEnd *TimeOfDay) ([]Slot, error) {
	if err := day.Template.Validate(); err != nil {
		return nil, err
	}
	if day.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	start := day.Template.Open
	if rangeStart != nil && rangeStart.After(start) {
		start = *rangeStart
	}
	end := day.Template.Close
	if rangeEnd != nil && rangeEnd.Before(end) {
		end = *rangeEnd
	}

	var slots []Slot
	for t := start; t.Before(end); t = t.Add(day.Template.IntervalMinutes) {
		if t.Add(day.DurationMinutes).After(day.Template.Close) {
			continue
		}
		capacity := EffectiveCapacity(day.Template, day.Overrides, day.ServiceID, day.Date, t)
		occupied := day.Occupied[t]
		if occupied >= capacity {
			continue
		}
		slots = append(slots, Slot{Start: t, Capacity: capacity, Occupied: occupied})
	}
	return slots, nil
}

// ContainsSlot reports whether slot is a start the template would ever
// offer for the given duration, regardless of occupancy. The booking path
// uses it to refuse starts the calculator could never have returned.
func ContainsSlot(tpl SlotTemplate, durationMinutes int, slot TimeOfDay) (bool, error) {
	if err := tpl.Validate(); err != nil {
		return false, err
	}
	if durationMinutes <= 0 {
		return false, ErrInvalidDuration
	}
	for t := tpl.Open; t.Before(tpl.Close); t = t.Add(tpl.IntervalMinutes) {
		if t == slot {
			return !t.Add(durationMinutes).After(tpl.Close), nil
		}
		if t.After(slot) {
			break
		}
	}
	return false, nil
}
