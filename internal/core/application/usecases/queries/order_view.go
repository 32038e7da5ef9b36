// Package queries contains the read side of the work-order service. Handlers
// run SQL directly against the read model and return flat views instead of
// aggregates.
package queries

import (
	"database/sql"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderView is the read representation of an order shared by list, detail and
// overdue queries.
type OrderView struct {
	ID          kernel.UUID
	Title       string
	ClientName  string
	ClientEmail string
	Description string
	Expertise   []string
	Status      order.Status
	Priority    order.Priority
	AssigneeID  *kernel.UUID
	DueDate     *time.Time
	Progress    *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const orderViewColumns = `
	id,
	title,
	client_name,
	client_email,
	description,
	expertise,
	status,
	priority,
	assignee_id,
	due_date,
	progress,
	created_at,
	updated_at`

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)
	for rows.Next() {
		view, err := scanOrderView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view        OrderView
		id          uuid.UUID
		expertise   pq.StringArray
		statusCode  string
		priorityStr string
		assigneeID  uuid.NullUUID
		dueDate     sql.NullTime
		progress    sql.NullInt64
	)

	if err := rows.Scan(
		&id,
		&view.Title,
		&view.ClientName,
		&view.ClientEmail,
		&view.Description,
		&expertise,
		&statusCode,
		&priorityStr,
		&assigneeID,
		&dueDate,
		&progress,
		&view.CreatedAt,
		&view.UpdatedAt,
	); err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromRaw(id)
	if err != nil {
		return OrderView{}, err
	}
	view.ID = orderID

	if view.Status, err = order.ParseStatus(statusCode); err != nil {
		return OrderView{}, err
	}
	if view.Priority, err = order.ParsePriority(priorityStr); err != nil {
		return OrderView{}, err
	}

	view.Expertise = []string(expertise)
	if view.Expertise == nil {
		view.Expertise = []string{}
	}

	if assigneeID.Valid {
		assignee, assigneeErr := kernel.UUIDFromRaw(assigneeID.UUID)
		if assigneeErr != nil {
			return OrderView{}, assigneeErr
		}
		view.AssigneeID = &assignee
	}
	if dueDate.Valid {
		due := dueDate.Time
		view.DueDate = &due
	}
	if progress.Valid {
		p := int(progress.Int64)
		view.Progress = &p
	}

	return view, nil
}

// visibleTo returns the SQL predicate limiting orders to those the actor may
// see. Admins see everything; everyone else sees the orders assigned to them
// and the open pool of pending orders.
func visibleTo(actor session.Session) (string, []any) {
	if actor.IsAdmin() {
		return "TRUE", nil
	}
	return "(assignee_id = ? OR status = ?)", []any{actor.ActorID().Raw(), order.Pending.String()}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere, with the
// term's own wildcards taken literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
