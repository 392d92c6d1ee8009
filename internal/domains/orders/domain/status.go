package domain

import "errors"

// Status enumerates order workflow states.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Transition rejection reasons. The string codes surface unchanged in
// API problem responses.
var (
	ErrUnknownStatus     = errors.New("status is not a recognized value")
	ErrTerminalState     = errors.New("order is in a terminal state")
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

const (
	ReasonUnknownStatus     = "unknown-status"
	ReasonTerminalState     = "terminal-state"
	ReasonInvalidTransition = "invalid-transition"
)

// stage orders the linear part of the workflow. Cancelled sits outside
// the chain and is handled separately.
var stages = map[Status]int{
	StatusPlaced:    0,
	StatusAccepted:  1,
	StatusPreparing: 2,
	StatusReady:     3,
	StatusCompleted: 4,
}

// Known reports whether the status is a recognized value.
func (s Status) Known() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := stages[s]
	return ok
}

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Transition decides whether an order may move from current to
// requested. It is a pure function: same inputs, same outcome.
//
// The workflow is the chain placed -> accepted -> preparing -> ready ->
// completed. Any strictly later stage is reachable from an earlier
// non-terminal one (staff may skip steps, e.g. placed -> preparing),
// cancelled is reachable from every non-terminal state, and backward or
// self transitions are rejected.
func Transition(current, requested Status) error {
	if !requested.Known() {
		return ErrUnknownStatus
	}
	if current.Terminal() {
		return ErrTerminalState
	}
	if requested == StatusCancelled {
		return nil
	}
	if stages[requested] > stages[current] {
		return nil
	}
	return ErrInvalidTransition
}

// RejectionReason maps a Transition error to its wire reason code.
// Returns the empty string for nil or unrelated errors.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownStatus):
		return ReasonUnknownStatus
	case errors.Is(err, ErrTerminalState):
		return ReasonTerminalState
	case errors.Is(err, ErrInvalidTransition):
		return ReasonInvalidTransition
	default:
		return ""
	}
}
