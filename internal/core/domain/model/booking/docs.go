// Package booking implements the pickup-booking workflow state machine.
//
// The workflow models a simulated third-party booking call as a three-state
// machine (Idle, Loading, Success) whose success state carries a transient
// Quote. In the simulated environment every attempt eventually succeeds, so
// no failure state exists; adding one later only requires a new State value
// and a failing counterpart to Resolve.
//
// Attempt tokens guard the race between dismissal and delayed resolution:
// dismissing the view does not abort the underlying timer, it merely
// invalidates the token the timer will present.
package booking
