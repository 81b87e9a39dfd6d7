// Package bookingstate owns the booking lifecycle transition table.
package bookingstate

import (
	"fieldserve/models"
	"fieldserve/utils"
)

// validTransitions lists, per current status, the statuses reachable from
// it. ASSIGNED appears as a target only for completeness of the table; the
// generic update path never grants it (see Transition).
var validTransitions = map[string][]string{
	models.BookingStatusPending:    {models.BookingStatusAssigned, models.BookingStatusCancelled},
	models.BookingStatusAssigned:   {models.BookingStatusInProgress, models.BookingStatusCancelled, models.BookingStatusCompleted},
	models.BookingStatusInProgress: {models.BookingStatusCompleted, models.BookingStatusCancelled},
	models.BookingStatusCompleted:  {},
	models.BookingStatusCancelled:  {},
}

// Known reports whether s is a recognized booking status.
func Known(s string) bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransition reports whether from -> to appears in the table.
func CanTransition(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status change requested through the generic
// update path. ASSIGNED is refused here: it is entered only through the
// assignment coordinator.
func Transition(from, to string) error {
	if !Known(to) {
		return utils.ValidationError{Field: "status", Reason: "unknown status " + to}
	}
	if to == models.BookingStatusAssigned {
		return utils.InvalidTransitionError{From: from, To: to}
	}
	if !CanTransition(from, to) {
		return utils.InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// Assignable reports whether a booking in the given status may be bound to
// an agent by the assignment coordinator.
func Assignable(from string) bool {
	return CanTransition(from, models.BookingStatusAssigned)
}
