package http

import (
	"context"
	"log/slog"
	"net/http"

	"workorders/internal/adapters/in/http/servers"
	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Use case contracts consumed by the HTTP adapter.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (commands.ChangeOrderStatusResult, error)
	}
	UpdateOrderProgressHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderProgressCommand) (*order.Order, error)
	}
	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.StatusHistoryEntry, error)
	}
	GetDashboardStatsHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardStatsQuery) (queries.GetDashboardStatsQueryResponse, error)
	}
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	ChangeOrderStatus   ChangeOrderStatusHandler
	UpdateOrderProgress UpdateOrderProgressHandler
	GetOrders           GetOrdersHandler
	GetOrder            GetOrderHandler
	GetOrderHistory     GetOrderHistoryHandler
	GetDashboardStats   GetDashboardStatsHandler
}

// Server implements servers.ServerInterface for handling HTTP requests.
// It translates between wire models and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priority, err := order.ParsePriority(string(body.Priority))
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create order")
	}

	brief := order.Brief{
		Title:       body.Title,
		ClientName:  body.ClientName,
		ClientEmail: body.ClientEmail,
	}
	if body.Description != nil {
		brief.Description = *body.Description
	}
	if body.Expertise != nil {
		brief.Expertise = *body.Expertise
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), brief, priority, body.DueDate)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create order")
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	actor, ok := SessionFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing session")
	}

	tab := queries.TabAll
	if params.Tab != nil {
		parsed, err := queries.ParseTab(*params.Tab)
		if err != nil {
			return s.errorResponse(ctx, err, "Failed to retrieve orders")
		}
		tab = parsed
	}

	var search string
	if params.Search != nil {
		search = *params.Search
	}

	priority := order.UnknownPriority
	if params.Priority != nil {
		parsed, err := order.ParsePriority(string(*params.Priority))
		if err != nil {
			return s.errorResponse(ctx, err, "Failed to retrieve orders")
		}
		priority = parsed
	}

	query, err := queries.NewGetOrdersQuery(actor, tab, search, priority)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve orders")
	}

	views, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = orderFromView(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	actor, ok := SessionFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing session")
	}

	id, err := kernel.UUIDFromRaw(orderId)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order")
	}

	query, err := queries.NewGetOrderQuery(id, actor)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order")
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, servers.OrderDetail{
		Order:            orderFromView(detail.Order),
		AvailableActions: actionsFrom(detail.AvailableActions),
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	actor, ok := SessionFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing session")
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromRaw(orderId)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update order status")
	}

	target, err := order.ParseStatus(string(body.TargetStatus))
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update order status")
	}

	var assignee *kernel.UUID
	if body.AssigneeId != nil {
		a, assigneeErr := kernel.UUIDFromRaw(*body.AssigneeId)
		if assigneeErr != nil {
			return s.errorResponse(ctx, assigneeErr, "Failed to update order status")
		}
		assignee = &a
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, actor, target, assignee)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update order status")
	}

	result, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, servers.TransitionResult{
		Order:   orderFromAggregate(result.Order),
		Message: result.Message(),
	})
}

// UpdateOrderProgress handles PUT /api/v1/orders/{orderId}/progress.
func (s *Server) UpdateOrderProgress(ctx echo.Context, orderId servers.OrderId) error {
	actor, ok := SessionFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing session")
	}

	var body servers.UpdateOrderProgressJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromRaw(orderId)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update progress")
	}

	cmd, err := commands.NewUpdateOrderProgressCommand(id, actor, body.Progress)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update progress")
	}

	updated, err := s.handlers.UpdateOrderProgress.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to update progress")
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId servers.OrderId) error {
	actor, ok := SessionFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing session")
	}

	id, err := kernel.UUIDFromRaw(orderId)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order history")
	}

	query, err := queries.NewGetOrderHistoryQuery(id, actor)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order history")
	}

	entries, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve order history")
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = servers.HistoryEntry{
			From:       servers.Status(e.From.String()),
			To:         servers.Status(e.To.String()),
			ActorId:    e.ActorID.Raw(),
			ActorRole:  e.ActorRole.String(),
			OccurredAt: e.OccurredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	actor, ok := SessionFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing session")
	}

	query, err := queries.NewGetDashboardStatsQuery(actor)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve dashboard stats")
	}

	stats, err := s.handlers.GetDashboardStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err, "Failed to retrieve dashboard stats")
	}

	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		TotalOrders:            stats.TotalOrders,
		PendingOrders:          stats.PendingOrders,
		InProgressOrders:       stats.InProgressOrders,
		CompletedOrders:        stats.CompletedOrders,
		AverageCompletionHours: stats.AverageCompletionHours,
	})
}
