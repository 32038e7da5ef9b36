// Package servers holds the HTTP contract of the service: the OpenAPI
// document, its request and response models, and the echo bindings that
// decode path, query and header parameters before calling ServerInterface.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Status is an order status code.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Priority is an order priority code.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Action is a status the caller may move an order to, with its display label.
type Action struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
}

// DashboardStats defines model for DashboardStats.
type DashboardStats struct {
	AverageCompletionHours *float64 `json:"averageCompletionHours,omitempty"`
	CompletedOrders        int64    `json:"completedOrders"`
	InProgressOrders       int64    `json:"inProgressOrders"`
	PendingOrders          int64    `json:"pendingOrders"`
	TotalOrders            int64    `json:"totalOrders"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	ActorId    openapi_types.UUID `json:"actorId"`
	ActorRole  string             `json:"actorRole"`
	From       Status             `json:"from"`
	OccurredAt time.Time          `json:"occurredAt"`
	To         Status             `json:"to"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ClientEmail string     `json:"clientEmail"`
	ClientName  string     `json:"clientName"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Expertise   *[]string  `json:"expertise,omitempty"`
	Priority    Priority   `json:"priority"`
	Title       string     `json:"title"`
}

// Order defines model for Order.
type Order struct {
	AssigneeId  *openapi_types.UUID `json:"assigneeId,omitempty"`
	ClientEmail string              `json:"clientEmail"`
	ClientName  string              `json:"clientName"`
	CreatedAt   time.Time           `json:"createdAt"`
	Description string              `json:"description"`
	DueDate     *time.Time          `json:"dueDate,omitempty"`
	Expertise   []string            `json:"expertise"`
	Id          openapi_types.UUID  `json:"id"`
	Priority    Priority            `json:"priority"`
	Progress    *int                `json:"progress,omitempty"`
	Status      Status              `json:"status"`
	StatusLabel string              `json:"statusLabel"`
	Title       string              `json:"title"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// OrderDetail defines model for OrderDetail.
type OrderDetail struct {
	AvailableActions []Action `json:"availableActions"`
	Order            Order    `json:"order"`
}

// ProgressUpdate defines model for ProgressUpdate.
type ProgressUpdate struct {
	Progress int `json:"progress"`
}

// TransitionRequest defines model for TransitionRequest.
type TransitionRequest struct {
	AssigneeId   *openapi_types.UUID `json:"assigneeId,omitempty"`
	TargetStatus Status              `json:"targetStatus"`
}

// TransitionResult defines model for TransitionResult.
type TransitionResult struct {
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Tab      *string   `form:"tab,omitempty" json:"tab,omitempty"`
	Search   *string   `form:"search,omitempty" json:"search,omitempty"`
	Priority *Priority `form:"priority,omitempty" json:"priority,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = TransitionRequest

// UpdateOrderProgressJSONRequestBody defines body for UpdateOrderProgress for application/json ContentType.
type UpdateOrderProgressJSONRequestBody = ProgressUpdate
