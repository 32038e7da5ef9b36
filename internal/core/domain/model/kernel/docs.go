// Package kernel provides the shared domain primitives of the work-order
// service. Currently that is UUID, the identifier value object used for
// orders, consultants and audit entries.
package kernel
