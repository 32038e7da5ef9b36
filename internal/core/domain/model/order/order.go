package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/errs"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Brief is the client-facing description of the requested work.
type Brief struct {
	Title       string
	ClientName  string
	ClientEmail string
	Description string
	Expertise   []string
}

// Order is the aggregate root for a unit of consulting work.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Title, client name and client email are present
//   - Status and priority are members of their enumerations
//   - updatedAt is never before createdAt
//   - Progress, when set, lies within [MinProgress, MaxProgress]
//
// Status changes go through WithStatus, which returns a copy; the receiver is
// left untouched so a rejected transition can never leak a half-applied state.
type Order struct {
	id         kernel.UUID
	brief      Brief
	status     Status
	priority   Priority
	createdAt  time.Time
	updatedAt  time.Time
	assigneeID *kernel.UUID
	dueDate    *time.Time
	progress   *int

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a Pending order. createdAt also initializes updatedAt.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), order.Brief{
//	    Title:       "Market Research for Software Startup",
//	    ClientName:  "Alex Johnson",
//	    ClientEmail: "alex@techstartup.com",
//	}, order.High, time.Now())
func NewOrder(id kernel.UUID, brief Brief, priority Priority, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBrief(brief),
		o.setPriority(priority),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the full persisted state of an order.
type Snapshot struct {
	ID         kernel.UUID
	Brief      Brief
	Status     Status
	Priority   Priority
	CreatedAt  time.Time
	UpdatedAt  time.Time
	AssigneeID *kernel.UUID
	DueDate    *time.Time
	Progress   *int
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(s.ID),
		o.setBrief(s.Brief),
		o.setPriority(s.Priority),
		o.setCreatedAt(s.CreatedAt),
		s.Status.Validate(),
		o.setAssignee(s.AssigneeID),
		o.setProgress(s.Progress),
	); err != nil {
		return nil, err
	}

	if err := o.setUpdatedAt(s.UpdatedAt); err != nil {
		return nil, err
	}

	o.status = s.Status
	o.dueDate = copyTime(s.DueDate)
	return o, nil
}

// Snapshot returns a deep copy of the order state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:         o.id,
		Brief:      o.Brief(),
		Status:     o.status,
		Priority:   o.priority,
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
		AssigneeID: o.Assignee(),
		DueDate:    o.DueDate(),
		Progress:   o.Progress(),
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Brief returns a copy of the brief; the expertise slice is not shared.
func (o *Order) Brief() Brief {
	b := o.brief
	b.Expertise = slices.Clone(o.brief.Expertise)
	return b
}

func (o *Order) Title() string {
	return o.brief.Title
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Priority() Priority {
	return o.priority
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assignee returns the assigned consultant, or nil while unassigned.
func (o *Order) Assignee() *kernel.UUID {
	if o.assigneeID == nil {
		return nil
	}
	id := *o.assigneeID
	return &id
}

// IsAssignedTo reports whether the given consultant holds the order.
func (o *Order) IsAssignedTo(consultantID kernel.UUID) bool {
	return o.assigneeID != nil && o.assigneeID.IsEqual(consultantID)
}

// IsVisibleTo reports whether actor may read or act on the order. Admins see
// every order; anyone else sees pending orders and the ones assigned to them.
func (o *Order) IsVisibleTo(actor session.Session) bool {
	return actor.IsAdmin() || o.status == Pending || o.IsAssignedTo(actor.ActorID())
}

func (o *Order) DueDate() *time.Time {
	return copyTime(o.dueDate)
}

// IsOverdue reports whether a non-terminal order has passed its due date.
func (o *Order) IsOverdue(now time.Time) bool {
	return o.dueDate != nil && !o.status.IsTerminal() && now.After(*o.dueDate)
}

// Progress returns the completion percentage, or nil when never reported.
func (o *Order) Progress() *int {
	if o.progress == nil {
		return nil
	}
	p := *o.progress
	return &p
}

// WithStatus returns a copy of the order moved to status at the given time.
// It checks only data invariants; whether the move is permitted for an actor
// is decided by services.OrderWorkflow, which is the sole caller.
func (o *Order) WithStatus(status Status, at time.Time) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	if at.Before(o.updatedAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("%s is before last update %s", at.Format(time.RFC3339), o.updatedAt.Format(time.RFC3339)),
		)
	}

	next := o.clone()
	if err := next.setUpdatedAt(at); err != nil {
		return nil, err
	}
	next.status = status
	return next, nil
}

// AssignTo records the consultant working on the order. Only orders that have
// just been assigned or accepted may take an assignee.
func (o *Order) AssignTo(consultantID kernel.UUID) error {
	if o.status != Assigned && o.status != InProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignee",
			fmt.Errorf("%s is not a valid status to take an assignee", o.status),
		)
	}
	return o.setAssignee(&consultantID)
}

// SetDueDate replaces the due date; nil clears it.
func (o *Order) SetDueDate(due *time.Time) {
	o.dueDate = copyTime(due)
}

// UpdateProgress records the completion percentage. It is deliberately
// independent of status.
func (o *Order) UpdateProgress(progress int) error {
	return o.setProgress(&progress)
}

func (o *Order) clone() *Order {
	c := *o
	c.brief = o.Brief()
	c.assigneeID = o.Assignee()
	c.dueDate = o.DueDate()
	c.progress = o.Progress()
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBrief(b Brief) error {
	var problems []error
	if strings.TrimSpace(b.Title) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	}
	if strings.TrimSpace(b.ClientName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("clientName"))
	}
	if strings.TrimSpace(b.ClientEmail) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("clientEmail"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	b.Expertise = slices.Clone(b.Expertise)
	o.brief = b
	return nil
}

func (o *Order) setPriority(p Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.priority = p
	return nil
}

func (o *Order) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = t
	return nil
}

func (o *Order) setUpdatedAt(t time.Time) error {
	if t.Before(o.createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updatedAt",
			fmt.Errorf("%s is before creation time %s", t.Format(time.RFC3339), o.createdAt.Format(time.RFC3339)),
		)
	}
	o.updatedAt = t
	return nil
}

func (o *Order) setAssignee(id *kernel.UUID) error {
	if id == nil {
		o.assigneeID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	assignee := *id
	o.assigneeID = &assignee
	return nil
}

func (o *Order) setProgress(p *int) error {
	if p == nil {
		o.progress = nil
		return nil
	}
	if *p < MinProgress || *p > MaxProgress {
		return errs.NewValueIsOutOfRangeError("progress", *p, MinProgress, MaxProgress)
	}
	v := *p
	o.progress = &v
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
