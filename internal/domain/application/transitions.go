// Package application holds the job application aggregate and its status
// state machine.
//
// Valid status graph:
//
//	submitted -> in_review -> shortlisted -> interview -> offered -> hired
//
// Every non-terminal status may also move to rejected (employer decision)
// or withdrawn (seeker decision). hired, rejected and withdrawn are
// terminal.
package application

import "fmt"

// Status values mirror the applications.status column.
type Status string

const (
	StatusSubmitted   Status = "submitted"
	StatusInReview    Status = "in_review"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusOffered     Status = "offered"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

// validTransitions lists every allowed (from -> to) pair. Terminal
// statuses have no entry.
var validTransitions = map[Status][]Status{
	StatusSubmitted:   {StatusInReview, StatusRejected, StatusWithdrawn},
	StatusInReview:    {StatusShortlisted, StatusRejected, StatusWithdrawn},
	StatusShortlisted: {StatusInterview, StatusRejected, StatusWithdrawn},
	StatusInterview:   {StatusOffered, StatusRejected, StatusWithdrawn},
	StatusOffered:     {StatusHired, StatusRejected, StatusWithdrawn},
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusSubmitted, StatusInReview, StatusShortlisted, StatusInterview,
		StatusOffered, StatusHired, StatusRejected, StatusWithdrawn:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTransitionAllowed reports whether moving from -> to is permitted.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s Status) bool {
	_, ok := validTransitions[s]
	return !ok
}
