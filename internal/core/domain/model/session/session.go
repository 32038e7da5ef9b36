package session

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/guard"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session identifies the acting user for a single request. It is read-only
// input to the workflow; nothing in the domain mutates it.
type Session struct {
	actorID kernel.UUID
	role    Role

	guard guard.ConstructorGuard
}

// NewSession validates the actor identifier and role.
func NewSession(actorID kernel.UUID, role Role) (Session, error) {
	if err := errors.Join(actorID.Validate(), role.Validate()); err != nil {
		return Session{}, err
	}
	return Session{actorID: actorID, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (s Session) Validate() error {
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s Session) ActorID() kernel.UUID {
	return s.actorID
}

func (s Session) Role() Role {
	return s.role
}

// IsAdmin is shorthand used by visibility rules.
func (s Session) IsAdmin() bool {
	return s.role == Admin
}
