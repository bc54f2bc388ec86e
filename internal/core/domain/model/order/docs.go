// Package order contains the order aggregate and its append-only event log.
//
// An order belongs to exactly one customer and records which staff user
// created it. Its state is a mutable open status string, updated only through
// explicit partial updates; the event log is a separate append-only history
// that never drives the state field.
package order
