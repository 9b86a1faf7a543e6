package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// OccupiesSlot reports whether an appointment in this status counts toward
// the slot's capacity.
func (s Status) OccupiesSlot() bool {
	return s == StatusPending || s == StatusApproved
}

// CanTransitionTo encodes the lifecycle state machine:
// pending → approved | rejected | cancelled; approved → cancelled | completed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusCancelled || next == StatusCompleted
	default:
		return false
	}
}
