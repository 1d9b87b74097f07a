package booking

import (
	"errors"
	"strings"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrBookingAlreadyInFlight is returned when a booking is requested while
	// a previous attempt has not been dismissed.
	ErrBookingAlreadyInFlight = errors.New("a booking attempt is already in flight")

	// ErrStaleBookingAttempt is returned when a delayed resolution arrives for
	// an attempt that has since been dismissed or superseded. Callers must
	// discard the resolution; a dismissed booking view is never resurrected.
	ErrStaleBookingAttempt = errors.New("booking attempt is stale")
)

// State represents the booking workflow's position in its lifecycle.
//
// State transitions:
//
//	Idle ──> Loading ──> Success
//	  ^         │            │
//	  └─────────┴────────────┘
//	       (dismiss from any state)
type State int

const (
	// Idle is the initial and terminal-reset state; no booking view is open.
	// The zero value is deliberately Idle so a fresh workflow needs no setup.
	Idle State = iota

	// Loading indicates the simulated pickup-booking call is in flight
	// and the booking view is open.
	Loading

	// Success indicates the booking resolved; the workflow carries a Quote
	// until dismissed.
	Success
)

// String returns the lowercase name of the state, matching the wire form
// consumed by the presentation layer.
func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	default:
		return "idle"
	}
}

// Quote is the transient result of a successful booking: a string-formatted
// price and the driver's estimated arrival in minutes. It is never persisted
// on the order and is discarded when the booking view is dismissed.
type Quote struct {
	price      string
	etaMinutes int
}

// NewQuote creates a validated Quote. The price must be non-empty and the
// ETA non-negative.
func NewQuote(price string, etaMinutes int) (Quote, error) {
	if strings.TrimSpace(price) == "" {
		return Quote{}, errs.NewValueIsRequiredError("price")
	}
	if etaMinutes < 0 {
		return Quote{}, errs.NewValueIsOutOfRangeError("etaMinutes", etaMinutes, 0, int(^uint(0)>>1))
	}
	return Quote{price: price, etaMinutes: etaMinutes}, nil
}

// Price returns the string-formatted price amount.
func (q Quote) Price() string {
	return q.price
}

// EtaMinutes returns the driver's estimated arrival time in minutes.
func (q Quote) EtaMinutes() int {
	return q.etaMinutes
}

// Workflow is the booking state machine for the currently selected order.
//
// Every Begin hands out a fresh attempt token; a delayed Resolve must present
// the token it was issued, so a resolution landing after Dismiss (or after a
// newer attempt started) is rejected instead of resurrecting a closed view.
// There is no true cancellation: Dismiss only invalidates the token, the
// underlying timer still fires and is rejected here.
//
// The zero value is a ready-to-use workflow in the Idle state.
type Workflow struct {
	state   State
	attempt int
	orderID kernel.OrderID
	quote   Quote
}

// Begin starts a booking attempt for the given order, moving Idle to Loading
// synchronously. Returns the attempt token the eventual resolution must
// present. Fails with ErrBookingAlreadyInFlight unless the workflow is Idle.
func (w *Workflow) Begin(orderID kernel.OrderID) (int, error) {
	if w.state != Idle {
		return 0, ErrBookingAlreadyInFlight
	}
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	w.attempt++
	w.state = Loading
	w.orderID = orderID
	w.quote = Quote{}
	return w.attempt, nil
}

// Resolve completes the attempt identified by token with the given quote,
// moving Loading to Success. A token that no longer matches the current
// attempt, or a workflow no longer Loading, yields ErrStaleBookingAttempt
// and leaves the state untouched.
func (w *Workflow) Resolve(token int, quote Quote) error {
	if w.state != Loading || token != w.attempt {
		return ErrStaleBookingAttempt
	}

	w.state = Success
	w.quote = quote
	return nil
}

// Dismiss returns the workflow to Idle from any state, discarding the quote
// and invalidating any in-flight attempt token.
func (w *Workflow) Dismiss() {
	w.state = Idle
	w.orderID = kernel.OrderID{}
	w.quote = Quote{}
}

// State returns the workflow's current state.
func (w *Workflow) State() State {
	return w.state
}

// OrderID returns the order the current attempt addresses.
// Only meaningful while the workflow is not Idle.
func (w *Workflow) OrderID() kernel.OrderID {
	return w.orderID
}

// Result returns the quote carried by the Success state.
// The boolean is false in any other state.
func (w *Workflow) Result() (Quote, bool) {
	if w.state != Success {
		return Quote{}, false
	}
	return w.quote, true
}
