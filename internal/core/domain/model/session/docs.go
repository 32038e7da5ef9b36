// Package session models who is acting on an order: the actor's identifier and
// permission role. A Session is passed explicitly into every workflow call so
// that transition rules never depend on ambient process state.
//
// Roles:
//   - Consultant: executes work and submits it for review
//   - Admin: handles intake, assignment, cancellation and final sign-off
//   - Manager: declared but reserved; it has no transition rules
package session
