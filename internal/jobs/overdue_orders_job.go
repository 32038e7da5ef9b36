package jobs

import (
	"context"
	"log/slog"
	"time"

	"workorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueScanSchedule runs the scan at the start of every minute.
const DefaultOverdueScanSchedule = "0 * * * * *"

// OverdueOrdersFinder lists the orders whose due date has passed.
type OverdueOrdersFinder interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.OrderView, error)
}

// OverdueOrdersJob periodically reports open orders that are past their due date.
type OverdueOrdersJob struct {
	finder   OverdueOrdersFinder
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueOrdersJob creates the scan job. schedule is a six-field cron
// expression (seconds first); an empty one means DefaultOverdueScanSchedule.
func NewOverdueOrdersJob(
	finder OverdueOrdersFinder,
	schedule string,
	now func() time.Time,
	logger *slog.Logger,
) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueScanSchedule
	}
	if now == nil {
		now = time.Now
	}

	return &OverdueOrdersJob{
		finder:   finder,
		schedule: schedule,
		now:      now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
	}
}

// Start registers the scan with the scheduler and starts it.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, scanErr := j.Scan(ctx); scanErr != nil {
			j.logger.ErrorContext(ctx, "Overdue orders scan failed", "error", scanErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish.
func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

// Scan logs a warning for every overdue order and returns how many were found.
func (j *OverdueOrdersJob) Scan(ctx context.Context) (int, error) {
	asOf := j.now().UTC()

	query, err := queries.NewGetOverdueOrdersQuery(asOf)
	if err != nil {
		return 0, err
	}

	overdue, err := j.finder.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, o := range overdue {
		attrs := []any{
			"order_id", o.ID.String(),
			"title", o.Title,
			"status", o.Status.String(),
		}
		if o.DueDate != nil {
			attrs = append(attrs, "due_date", *o.DueDate, "overdue_by", asOf.Sub(*o.DueDate).Round(time.Minute))
		}
		if o.AssigneeID != nil {
			attrs = append(attrs, "assignee_id", o.AssigneeID.String())
		}
		j.logger.WarnContext(ctx, "Order is overdue", attrs...)
	}

	return len(overdue), nil
}
