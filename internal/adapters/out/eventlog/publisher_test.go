package eventlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"workorders/internal/adapters/out/eventlog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := eventlog.NewPublisher(logger)

	event := order.StatusChanged{
		OrderID:    kernel.NewUUID(),
		Previous:   order.InProgress,
		Current:    order.Review,
		ActorID:    kernel.NewUUID(),
		ActorRole:  session.Consultant,
		OccurredAt: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
	}

	publisher.Publish(context.Background(), event)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Order status updated to review", record["msg"])
	assert.Equal(t, "order_events", record["component"])
	assert.Equal(t, event.OrderID.String(), record["order_id"])
	assert.Equal(t, "in_progress", record["from"])
	assert.Equal(t, "review", record["to"])
	assert.Equal(t, "consultant", record["actor_role"])
}
