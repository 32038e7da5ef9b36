package commands

import (
	"context"
	"errors"
	"time"

	"workorders/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// DefaultConflictRetries is used when a handler is built with a zero retry budget.
const DefaultConflictRetries = 3

const conflictRetryInterval = 20 * time.Millisecond

// retryOnConflict runs operation again, from a fresh read, each time it fails
// with errs.ErrConflict. Any other error stops immediately and is returned as is.
// After maxRetries retries the last conflict is returned.
func retryOnConflict(ctx context.Context, maxRetries uint64, operation func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(conflictRetryInterval), maxRetries),
		ctx,
	)

	return backoff.Retry(func() error {
		err := operation()
		if err == nil || errors.Is(err, errs.ErrConflict) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}
