package messaging

import (
	"errors"
	"strings"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrSendAlreadyInFlight is returned when a template send is requested
	// while another one has not yet resolved. Sends are never queued.
	ErrSendAlreadyInFlight = errors.New("a template send is already in flight")

	// ErrStaleSendAttempt is returned when a delayed resolution presents a
	// token that no longer identifies the current send.
	ErrStaleSendAttempt = errors.New("template send attempt is stale")
)

// Workflow tracks the templated-message send in flight, if any.
//
// The workflow records which template is being sent so the presentation
// layer can disable exactly that template in the catalogue while leaving the
// rest selectable. Only one send may be in flight at a time; a concurrent
// Begin is rejected rather than queued or silently replaced.
//
// Closing the compose view does not cancel a send: the simulated latency
// still elapses, the message still lands in the order log, and the attempt
// token guards against anything else applying twice.
//
// The zero value is a ready-to-use idle workflow.
type Workflow struct {
	orderID  kernel.OrderID
	template string
	attempt  int
}

// Begin marks the given template as sending to the given order and returns
// the attempt token its resolution must present.
// Fails with ErrSendAlreadyInFlight if a send is pending.
func (w *Workflow) Begin(orderID kernel.OrderID, template string) (int, error) {
	if w.template != "" {
		return 0, ErrSendAlreadyInFlight
	}
	if err := orderID.Validate(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(template) == "" {
		return 0, errs.NewValueIsRequiredError("template")
	}

	w.attempt++
	w.orderID = orderID
	w.template = template
	return w.attempt, nil
}

// Resolve clears the sending marker for the attempt identified by token.
// A mismatched token yields ErrStaleSendAttempt and leaves the marker alone.
func (w *Workflow) Resolve(token int) error {
	if w.template == "" || token != w.attempt {
		return ErrStaleSendAttempt
	}

	w.orderID = kernel.OrderID{}
	w.template = ""
	return nil
}

// Sending reports whether a send is currently in flight.
func (w *Workflow) Sending() bool {
	return w.template != ""
}

// Template returns the template text currently being sent,
// or "" when the workflow is idle.
func (w *Workflow) Template() string {
	return w.template
}

// OrderID returns the order the in-flight send addresses.
// Only meaningful while Sending reports true.
func (w *Workflow) OrderID() kernel.OrderID {
	return w.orderID
}
