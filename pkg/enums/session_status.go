package enums

import "fmt"

// SessionStatus tracks where an exchange session sits in its lifecycle.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusConfirmed SessionStatus = "confirmed"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

var validSessionStatuses = []SessionStatus{
	SessionStatusPending,
	SessionStatusConfirmed,
	SessionStatusCompleted,
	SessionStatusCancelled,
}

// sessionTransitions lists the moves the product flow initiates. The record
// store itself accepts any valid status.
var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionStatusPending:   {SessionStatusConfirmed, SessionStatusCancelled},
	SessionStatusConfirmed: {SessionStatusCompleted},
}

// SessionStatuses returns every status in lifecycle order.
func SessionStatuses() []SessionStatus {
	out := make([]SessionStatus, len(validSessionStatuses))
	copy(out, validSessionStatuses)
	return out
}

func (s SessionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SessionStatus.
func (s SessionStatus) IsValid() bool {
	for _, candidate := range validSessionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are initiated from s.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// CanTransition reports whether moving from s to next follows the session state machine.
func (s SessionStatus) CanTransition(next SessionStatus) bool {
	for _, candidate := range sessionTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseSessionStatus converts raw input into a SessionStatus.
func ParseSessionStatus(value string) (SessionStatus, error) {
	for _, candidate := range validSessionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid session status %q", value)
}
