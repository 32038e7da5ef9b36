package order

import (
	"fmt"
	"strings"

	"workorders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
//	Pending ──┬──> Assigned ──> InProgress ──> Review ──> Completed
//	          │        │            ^    │
//	          │        └──> Review  │    │
//	          ├─────────────────────┘    │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal. The role-conditioned rules live in
// services.OrderWorkflow; Status only knows which values exist.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Pending
	Assigned
	InProgress
	Review
	Completed
	Cancelled
)

var statusCodes = map[Status]string{
	Pending:    "pending",
	Assigned:   "assigned",
	InProgress: "in_progress",
	Review:     "review",
	Completed:  "completed",
	Cancelled:  "cancelled",
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, InProgress, Review, Completed, Cancelled}
}

// ParseStatus maps a wire code such as "in_progress" to its Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate checks that the status is one of the six defined values.
func (s Status) Validate() error {
	if _, ok := statusCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire code, or "unknown" for invalid values.
func (s Status) String() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return "unknown"
}

// Label returns the human-readable form used in notifications, e.g. "in progress".
func (s Status) Label() string {
	return strings.ReplaceAll(s.String(), "_", " ")
}

// IsTerminal reports whether no further transitions can leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
