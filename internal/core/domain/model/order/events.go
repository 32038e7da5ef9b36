package order

import (
	"fmt"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/session"
)

// StatusChanged records one successful status transition. The workflow emits it;
// delivery (audit log, notifications) is left to collaborators.
type StatusChanged struct {
	OrderID    kernel.UUID
	Previous   Status
	Current    Status
	ActorID    kernel.UUID
	ActorRole  session.Role
	OccurredAt time.Time
}

// Message is the user-facing notification text for the change.
func (e StatusChanged) Message() string {
	return fmt.Sprintf("Order status updated to %s", e.Current.Label())
}
