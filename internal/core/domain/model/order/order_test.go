package order_test

import (
	"testing"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func validBrief() order.Brief {
	return order.Brief{
		Title:       "Market Research for Software Startup",
		ClientName:  "Alex Johnson",
		ClientEmail: "alex@techstartup.com",
		Description: "Comprehensive market research for a productivity product.",
		Expertise:   []string{"Market Research", "Software"},
	}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), validBrief(), order.High, createdAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, validBrief(), order.Medium, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Medium, o.Priority())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.UpdatedAt())
		assert.Nil(t, o.Assignee())
		assert.Nil(t, o.Progress())
		assert.Nil(t, o.DueDate())
		assert.Equal(t, validBrief(), o.Brief())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, order.Brief{}, order.UnknownPriority, time.Time{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "clientName")
		assert.Contains(t, err.Error(), "clientEmail")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should not share expertise slice with caller", func(t *testing.T) {
		brief := validBrief()
		o, err := order.NewOrder(kernel.NewUUID(), brief, order.Low, createdAt)
		require.NoError(t, err)

		brief.Expertise[0] = "Changed"
		got := o.Brief()
		got.Expertise[1] = "Changed too"

		assert.Equal(t, []string{"Market Research", "Software"}, o.Brief().Expertise)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order

	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_WithStatus(t *testing.T) {
	t.Run("should return moved copy and leave original untouched", func(t *testing.T) {
		o := newPendingOrder(t)
		at := createdAt.Add(time.Hour)

		next, err := o.WithStatus(order.Assigned, at)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next.Status())
		assert.Equal(t, at, next.UpdatedAt())
		assert.True(t, next.IsEqual(o))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, createdAt, o.UpdatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o := newPendingOrder(t)

		_, err := o.WithStatus(order.Unknown, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject time before creation", func(t *testing.T) {
		o := newPendingOrder(t)

		_, err := o.WithStatus(order.Assigned, createdAt.Add(-time.Second))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, createdAt, o.UpdatedAt())
	})

	t.Run("should reject time before last update", func(t *testing.T) {
		lastUpdate := createdAt.Add(time.Hour)
		assigned, err := newPendingOrder(t).WithStatus(order.Assigned, lastUpdate)
		require.NoError(t, err)

		_, err = assigned.WithStatus(order.InProgress, lastUpdate.Add(-time.Second))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Assigned, assigned.Status())
		assert.Equal(t, lastUpdate, assigned.UpdatedAt())
	})

	t.Run("should accept time equal to last update", func(t *testing.T) {
		lastUpdate := createdAt.Add(time.Hour)
		assigned, err := newPendingOrder(t).WithStatus(order.Assigned, lastUpdate)
		require.NoError(t, err)

		next, err := assigned.WithStatus(order.InProgress, lastUpdate)

		require.NoError(t, err)
		assert.Equal(t, lastUpdate, next.UpdatedAt())
	})

	t.Run("copy does not alias mutable fields", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.UpdateProgress(10))

		next, err := o.WithStatus(order.Assigned, createdAt)
		require.NoError(t, err)
		require.NoError(t, next.UpdateProgress(50))

		assert.Equal(t, 10, *o.Progress())
		assert.Equal(t, 50, *next.Progress())
	})
}

func TestOrder_AssignTo(t *testing.T) {
	consultant := kernel.NewUUID()

	t.Run("should reject assignee on pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.AssignTo(consultant)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.Assignee())
	})

	for _, status := range []order.Status{order.Assigned, order.InProgress} {
		t.Run("should accept assignee when "+status.String(), func(t *testing.T) {
			o, err := newPendingOrder(t).WithStatus(status, createdAt)
			require.NoError(t, err)

			require.NoError(t, o.AssignTo(consultant))
			assert.True(t, o.IsAssignedTo(consultant))
			assert.False(t, o.IsAssignedTo(kernel.NewUUID()))
		})
	}

	t.Run("should reject invalid consultant id", func(t *testing.T) {
		o, err := newPendingOrder(t).WithStatus(order.Assigned, createdAt)
		require.NoError(t, err)

		require.ErrorIs(t, o.AssignTo(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrder_IsVisibleTo(t *testing.T) {
	owner := kernel.NewUUID()
	as := func(id kernel.UUID, role session.Role) session.Session {
		s, err := session.NewSession(id, role)
		require.NoError(t, err)
		return s
	}

	pending := newPendingOrder(t)
	assigned, err := pending.WithStatus(order.Assigned, createdAt)
	require.NoError(t, err)
	require.NoError(t, assigned.AssignTo(owner))
	unassigned, err := pending.WithStatus(order.InProgress, createdAt)
	require.NoError(t, err)

	tests := []struct {
		name    string
		order   *order.Order
		actor   session.Session
		visible bool
	}{
		{"admin sees assigned order", assigned, as(kernel.NewUUID(), session.Admin), true},
		{"admin sees unassigned order", unassigned, as(kernel.NewUUID(), session.Admin), true},
		{"consultant sees pending order", pending, as(kernel.NewUUID(), session.Consultant), true},
		{"consultant sees own order", assigned, as(owner, session.Consultant), true},
		{"consultant does not see other consultant's order", assigned, as(kernel.NewUUID(), session.Consultant), false},
		{"consultant does not see unassigned order past pending", unassigned, as(owner, session.Consultant), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.order.IsVisibleTo(tt.actor))
		})
	}
}

func TestOrder_UpdateProgress(t *testing.T) {
	o := newPendingOrder(t)

	require.NoError(t, o.UpdateProgress(0))
	require.NoError(t, o.UpdateProgress(100))
	assert.Equal(t, 100, *o.Progress())

	for _, bad := range []int{-1, 101} {
		err := o.UpdateProgress(bad)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
	assert.Equal(t, 100, *o.Progress())
}

func TestOrder_IsOverdue(t *testing.T) {
	o := newPendingOrder(t)
	due := createdAt.Add(24 * time.Hour)
	o.SetDueDate(&due)

	assert.False(t, o.IsOverdue(due))
	assert.True(t, o.IsOverdue(due.Add(time.Minute)))

	cancelled, err := o.WithStatus(order.Cancelled, createdAt)
	require.NoError(t, err)
	assert.False(t, cancelled.IsOverdue(due.Add(time.Minute)))

	o.SetDueDate(nil)
	assert.False(t, o.IsOverdue(due.Add(time.Minute)))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip snapshot", func(t *testing.T) {
		o := newPendingOrder(t)
		due := createdAt.Add(72 * time.Hour)
		o.SetDueDate(&due)
		require.NoError(t, o.UpdateProgress(30))
		moved, err := o.WithStatus(order.InProgress, createdAt.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, moved.AssignTo(kernel.NewUUID()))

		restored, err := order.RestoreOrder(moved.Snapshot())

		require.NoError(t, err)
		assert.Equal(t, moved.Snapshot(), restored.Snapshot())
	})

	t.Run("should reject broken invariants", func(t *testing.T) {
		progress := 120
		snap := newPendingOrder(t).Snapshot()
		snap.Status = order.Status(42)
		snap.Progress = &progress

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject updatedAt before createdAt", func(t *testing.T) {
		snap := newPendingOrder(t).Snapshot()
		snap.UpdatedAt = snap.CreatedAt.Add(-time.Hour)

		_, err := order.RestoreOrder(snap)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusChanged_Message(t *testing.T) {
	e := order.StatusChanged{
		OrderID:    kernel.NewUUID(),
		Previous:   order.Assigned,
		Current:    order.InProgress,
		ActorRole:  session.Consultant,
		OccurredAt: createdAt,
	}

	assert.Equal(t, "Order status updated to in progress", e.Message())
}
