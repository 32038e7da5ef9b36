package queries

import (
	"errors"
	"fmt"
	"strings"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// Tab selects a slice of the order list by status.
type Tab string

const (
	// TabAll lists every visible order.
	TabAll Tab = "all"
	// TabInProgressReview groups the orders being worked on or awaiting sign-off.
	TabInProgressReview Tab = "in_progress_review"
)

// ParseTab accepts "all", "in_progress_review" or any status code.
// An empty string means TabAll.
func ParseTab(s string) (Tab, error) {
	tab := Tab(strings.TrimSpace(s))
	if tab == "" {
		return TabAll, nil
	}
	if _, err := tab.statuses(); err != nil {
		return "", err
	}
	return tab, nil
}

// statuses returns the status codes the tab selects, or nil for every status.
func (t Tab) statuses() ([]string, error) {
	switch t {
	case TabAll:
		return nil, nil
	case TabInProgressReview:
		return []string{order.InProgress.String(), order.Review.String()}, nil
	}

	status, err := order.ParseStatus(string(t))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("tab", fmt.Errorf("%q is not a tab", string(t)))
	}
	return []string{status.String()}, nil
}

// GetOrdersQuery lists the orders visible to the actor, newest first.
//
// Example:
//
//	query, err := NewGetOrdersQuery(actor, TabInProgressReview, "retail", order.UnknownPriority)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	actor    session.Session
	tab      Tab
	search   string
	priority order.Priority

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery builds the list query. search matches title, client name
// and description case-insensitively; UnknownPriority disables the priority
// filter.
func NewGetOrdersQuery(actor session.Session, tab Tab, search string, priority order.Priority) (GetOrdersQuery, error) {
	if tab == "" {
		tab = TabAll
	}

	var priorityErr error
	if priority != order.UnknownPriority {
		priorityErr = priority.Validate()
	}
	_, tabErr := tab.statuses()

	if err := errors.Join(actor.Validate(), tabErr, priorityErr); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor:    actor,
		tab:      tab,
		search:   strings.TrimSpace(search),
		priority: priority,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Actor() session.Session {
	return q.actor
}

func (q GetOrdersQuery) Tab() Tab {
	return q.tab
}

func (q GetOrdersQuery) Search() string {
	return q.search
}

func (q GetOrdersQuery) Priority() order.Priority {
	return q.priority
}
