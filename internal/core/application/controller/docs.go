// Package controller hosts the application controller: the single
// coordination point for selection, search, the booking and messaging
// workflows, form submits and transient notifications.
//
// The controller exists because none of that state belongs to an aggregate.
// It composes the command and query handlers, runs every intent and every
// delayed resolution under one mutex, and derives its read models from the
// repository snapshot on demand.
//
// Delayed work is handed to the Scheduler port together with an attempt
// token. When the work fires it re-enters through the lock and presents the
// token; attempts the operator has dismissed or superseded in the meantime
// are rejected by the owning workflow, never applied.
package controller
