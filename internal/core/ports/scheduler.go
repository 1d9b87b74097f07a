package ports

import "time"

// Scheduler defers a function by a fixed delay. It stands in for the
// simulated-latency waits of the booking and messaging workflows so tests
// can trigger resolutions deterministically instead of sleeping.
//
// Scheduled functions are fire-and-forget: there is no cancellation. Callers
// that may become stale before the delay elapses must guard their callback
// with an attempt token and ignore the invocation when the token no longer
// matches.
type Scheduler interface {
	// Schedule runs fn after the given delay.
	Schedule(delay time.Duration, fn func())
}
