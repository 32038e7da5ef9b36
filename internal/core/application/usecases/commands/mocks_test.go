package commands_test

import (
	"context"
	"testing"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateProgress(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockStatusEventRepository struct{ mock.Mock }

func (m *MockStatusEventRepository) Add(ctx context.Context, event order.StatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) StatusEventRepository() ports.StatusEventRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusEventRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

var (
	createdAt = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	fixedNow  = createdAt.Add(2 * time.Hour)
)

func clock() time.Time { return fixedNow }

func sampleBrief() order.Brief {
	return order.Brief{
		Title:       "Operations Efficiency Audit",
		ClientName:  "Global Logistics",
		ClientEmail: "ops@globallogistics.com",
		Description: "Audit of supply chain operations.",
		Expertise:   []string{"Operations", "Supply Chain"},
	}
}

func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), sampleBrief(), order.High, createdAt)
	require.NoError(t, err)
	if status == order.Pending {
		return o
	}
	moved, err := o.WithStatus(status, createdAt.Add(time.Minute))
	require.NoError(t, err)
	return moved
}

// orderAssignedTo returns an order in status worked by consultantID. status
// must not be pending.
func orderAssignedTo(t *testing.T, status order.Status, consultantID kernel.UUID) *order.Order {
	t.Helper()
	snapshot := orderIn(t, status).Snapshot()
	snapshot.AssigneeID = &consultantID
	o, err := order.RestoreOrder(snapshot)
	require.NoError(t, err)
	return o
}
