package order_test

import (
	"testing"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_RoundTrip(t *testing.T) {
	codes := []string{"pending", "assigned", "in_progress", "review", "completed", "cancelled"}

	for i, code := range codes {
		t.Run(code, func(t *testing.T) {
			s, err := order.ParseStatus(code)

			require.NoError(t, err)
			require.NoError(t, s.Validate())
			assert.Equal(t, code, s.String())
			assert.Equal(t, order.Statuses()[i], s)
		})
	}
}

func TestStatus_Invalid(t *testing.T) {
	t.Run("unknown code", func(t *testing.T) {
		s, err := order.ParseStatus("archived")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, s)
	})

	t.Run("zero value", func(t *testing.T) {
		require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
		assert.Equal(t, "unknown", order.Unknown.String())
	})

	t.Run("out of range value", func(t *testing.T) {
		require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "in progress", order.InProgress.Label())
	assert.Equal(t, "review", order.Review.Label())
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Pending:    false,
		order.Assigned:   false,
		order.InProgress: false,
		order.Review:     false,
		order.Completed:  true,
		order.Cancelled:  true,
	}

	for s, want := range terminal {
		assert.Equal(t, want, s.IsTerminal(), s.String())
	}
}

func TestPriority(t *testing.T) {
	for _, code := range []string{"low", "medium", "high"} {
		p, err := order.ParsePriority(code)
		require.NoError(t, err)
		assert.Equal(t, code, p.String())
	}

	_, err := order.ParsePriority("urgent")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.UnknownPriority.Validate(), errs.ErrValueIsInvalid)
}
