package reservation

import (
	"errors"
	"fmt"
	"time"

	"clinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTTL = errors.New("lock ttl must be positive")
)

// SlotClaim identifies the slot a booking attempt wants to hold. ServiceID
// is not part of the lock key — capacity is per slot, not per service — but
// acquisition needs it to resolve the effective capacity.
type SlotClaim struct {
	TenantID  uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
	SlotStart schedule.TimeOfDay
}

// Key returns the uniqueness key for the claim: at most one unexpired lock
// may exist per key at any instant.
func (c SlotClaim) Key() string {
	return fmt.Sprintf("%s:%s:%s", c.TenantID, schedule.FormatDate(c.Date), c.SlotStart)
}

// Lock is the short-lived exclusivity marker bridging the gap between
// "slot appears free" and "appointment is durably recorded". It is consumed
// on successful booking, released on abandonment, and otherwise simply
// ignored once expired.
type Lock struct {
	claim       SlotClaim
	holderToken uuid.UUID
	acquiredAt  time.Time
	expiresAt   time.Time
}

func NewLock(claim SlotClaim, now time.Time, ttl time.Duration) (*Lock, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	return &Lock{
		claim:       claim,
		holderToken: uuid.New(),
		acquiredAt:  now,
		expiresAt:   now.Add(ttl),
	}, nil
}

func ReconstructLock(claim SlotClaim, holderToken uuid.UUID, acquiredAt, expiresAt time.Time) *Lock {
	return &Lock{
		claim:       claim,
		holderToken: holderToken,
		acquiredAt:  acquiredAt,
		expiresAt:   expiresAt,
	}
}

// Expired locks are invisible to uniqueness and capacity checks; nothing
// notifies the previous holder.
func (l *Lock) Expired(now time.Time) bool {
	return !now.Before(l.expiresAt)
}

func (l *Lock) HeldBy(token uuid.UUID) bool {
	return l.holderToken == token
}

func (l *Lock) Claim() SlotClaim        { return l.claim }
func (l *Lock) HolderToken() uuid.UUID  { return l.holderToken }
func (l *Lock) AcquiredAt() time.Time   { return l.acquiredAt }
func (l *Lock) ExpiresAt() time.Time    { return l.expiresAt }
