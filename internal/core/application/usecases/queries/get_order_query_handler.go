package queries

import (
	"context"

	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the order detail. Orders outside the actor's
// visibility are reported as not found.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db, services.NewOrderWorkflow(time.Now))
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
//	for _, action := range detail.AvailableActions {
//	    fmt.Println(action.Label())
//	}
type GetOrderQueryHandler struct {
	db       *gorm.DB
	workflow services.OrderWorkflow
}

func NewGetOrderQueryHandler(db *gorm.DB, workflow services.OrderWorkflow) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, workflow: workflow}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	visibility, args := visibleTo(query.Actor())
	args = append([]any{query.OrderID().Raw()}, args...)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE id = ? AND `+visibility,
		args...,
	).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(views) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	view := views[0]
	return GetOrderQueryResponse{
		Order:            view,
		AvailableActions: h.workflow.AllowedTargets(view.Status, query.Actor().Role()),
	}, nil
}
