package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTemplate = errors.New("invalid slot template")
	ErrInvalidDuration = errors.New("invalid service duration")
)

// SlotTemplate is the recurring weekly definition of open hours, interval
// and default per-slot capacity for a tenant. At most one exists per
// (tenant, weekday); a missing weekday means the tenant is closed that day.
// Templates are owned by staff configuration screens and read-only here.
type SlotTemplate struct {
	TenantID        uuid.UUID
	DayOfWeek       time.Weekday
	Open            TimeOfDay
	Close           TimeOfDay
	IntervalMinutes int
	DefaultCapacity int
}

func (t SlotTemplate) Validate() error {
	if !t.Open.Before(t.Close) {
		return ErrInvalidTemplate
	}
	if t.IntervalMinutes <= 0 {
		return ErrInvalidTemplate
	}
	if t.DefaultCapacity < 0 {
		return ErrInvalidTemplate
	}
	return nil
}

// CapacityOverride narrows or widens a template's DefaultCapacity for a
// specific slot. ServiceID and Date are each optional; a nil field matches
// anything.
type CapacityOverride struct {
	TenantID  uuid.UUID
	ServiceID *uuid.UUID
	Date      *time.Time
	SlotStart TimeOfDay
	Capacity  int
}

func (o CapacityOverride) matches(serviceID uuid.UUID, date time.Time, slot TimeOfDay) bool {
	if o.SlotStart != slot {
		return false
	}
	if o.ServiceID != nil && *o.ServiceID != serviceID {
		return false
	}
	if o.Date != nil && !SameDate(*o.Date, date) {
		return false
	}
	return true
}

// specificity orders candidate overrides: service+date beats date-only
// beats service-only beats neither.
func (o CapacityOverride) specificity() int {
	s := 0
	if o.ServiceID != nil {
		s++
	}
	if o.Date != nil {
		s += 2
	}
	return s
}

// EffectiveCapacity resolves the capacity for one slot: the most specific
// matching override wins, otherwise the template default applies.
func EffectiveCapacity(tpl SlotTemplate, overrides []CapacityOverride, serviceID uuid.UUID, date time.Time, slot TimeOfDay) int {
	capacity := tpl.DefaultCapacity
	best := -1
	for _, o := range overrides {
		if !o.matches(serviceID, date, slot) {
			continue
		}
		if s := o.specificity(); s > best {
			best = s
			capacity = o.Capacity
		}
	}
	return capacity
}
