package order

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Priority ranks how urgently an order should be picked up.
type Priority int

const (
	UnknownPriority Priority = iota
	Low
	Medium
	High
)

var priorityCodes = map[Priority]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

func ParsePriority(code string) (Priority, error) {
	for p, c := range priorityCodes {
		if c == code {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", code))
}

func (p Priority) Validate() error {
	if _, ok := priorityCodes[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if code, ok := priorityCodes[p]; ok {
		return code
	}
	return "unknown"
}
