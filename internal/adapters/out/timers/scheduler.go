// Package timers provides the wall-clock Scheduler adapter used to realize
// the simulated latencies of the booking and messaging workflows.
package timers

import "time"

// Scheduler implements ports.Scheduler with time.AfterFunc. Scheduled
// functions run on their own goroutine when the delay elapses; stale
// invocations are rejected downstream by attempt tokens, not cancelled here.
type Scheduler struct{}

// NewScheduler creates a wall-clock scheduler.
func NewScheduler() Scheduler {
	return Scheduler{}
}

// Schedule runs fn after the given delay.
func (Scheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
