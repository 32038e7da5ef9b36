// Package order provides the Order aggregate of the work-order service: a unit
// of consulting work tracked through a status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the brief, priority, assignee, due date and progress
//   - Status: the closed set of lifecycle states
//   - Priority: the closed set of priorities
//   - StatusChanged: the event emitted for every successful status transition
//
// Key business rules:
//   - Orders are created in Pending status and are never deleted
//   - updatedAt never precedes createdAt and moves on every status change
//   - Progress, when present, lies within [0, 100]
//   - Which transitions are legal is decided by services.OrderWorkflow, not here
package order
