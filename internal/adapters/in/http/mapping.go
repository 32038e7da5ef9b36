package http

import (
	"workorders/internal/adapters/in/http/servers"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/order"
)

func orderFromAggregate(o *order.Order) servers.Order {
	s := o.Snapshot()
	return orderFromView(queries.OrderView{
		ID:          s.ID,
		Title:       s.Brief.Title,
		ClientName:  s.Brief.ClientName,
		ClientEmail: s.Brief.ClientEmail,
		Description: s.Brief.Description,
		Expertise:   s.Brief.Expertise,
		Status:      s.Status,
		Priority:    s.Priority,
		AssigneeID:  s.AssigneeID,
		DueDate:     s.DueDate,
		Progress:    s.Progress,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	})
}

func orderFromView(v queries.OrderView) servers.Order {
	expertise := v.Expertise
	if expertise == nil {
		expertise = []string{}
	}

	dto := servers.Order{
		Id:          v.ID.Raw(),
		Title:       v.Title,
		ClientName:  v.ClientName,
		ClientEmail: v.ClientEmail,
		Description: v.Description,
		Expertise:   expertise,
		Status:      servers.Status(v.Status.String()),
		StatusLabel: v.Status.Label(),
		Priority:    servers.Priority(v.Priority.String()),
		DueDate:     v.DueDate,
		Progress:    v.Progress,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if v.AssigneeID != nil {
		assignee := v.AssigneeID.Raw()
		dto.AssigneeId = &assignee
	}

	return dto
}

func actionsFrom(statuses []order.Status) []servers.Action {
	actions := make([]servers.Action, 0, len(statuses))
	for _, s := range statuses {
		actions = append(actions, servers.Action{Status: servers.Status(s.String()), Label: s.Label()})
	}
	return actions
}
