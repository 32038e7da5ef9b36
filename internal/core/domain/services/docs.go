// Package services provides domain services of the work-order service:
// business rules that need more than a single aggregate's own state.
//
// The package includes:
//   - OrderWorkflow: the role-conditioned status state machine for orders
//
// OrderWorkflow is pure given its inputs and an injected clock. It does not
// persist, log, notify or retry; application command handlers do that.
package services
