package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed set of transitions:
//
//	Pending ──┬──> InPreparation ──┬──> ReadyForDelivery ──> Delivered
//	          │                    │
//	          └────> Cancelled <───┘
//
// Delivered and Cancelled are terminal. Status is a value object that
// validates transitions and provides string representations for persistence
// and the API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// InPreparation indicates the kitchen has accepted the order.
	InPreparation

	// ReadyForDelivery indicates preparation finished and the order awaits handoff.
	ReadyForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Pending:          "Pending",
		InPreparation:    "InPreparation",
		ReadyForDelivery: "ReadyForDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:          "Pending",
		InPreparation:    "InPreparation",
		ReadyForDelivery: "ReadyForDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// getAllowedTransitions returns the fixed transition table. Statuses with no
// entry are terminal. The table is rebuilt on each call, so callers can never
// mutate shared state through it.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:          {InPreparation, Cancelled},
		InPreparation:    {ReadyForDelivery, Cancelled},
		ReadyForDelivery: {Delivered},
	}
}

// StatusFromString parses a status name as received from the API.
// Matching is case-insensitive; Unknown is not accepted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	if err := s.Validate(); err != nil {
		return false
	}
	return len(getAllowedTransitions()[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is an edge of the
// transition table. Any move out of a terminal status returns false.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition to next.
//
// Returns:
//   - (next, nil) when (s, next) is an edge of the transition table
//   - (0, error) naming both statuses when the move is not allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("cannot change status from %s to %s", s, next))
	}

	return next, nil
}
