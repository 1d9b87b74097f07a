package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"opsboard/internal/core/application/usecases/commands"
	"opsboard/internal/core/application/usecases/queries"
	"opsboard/internal/core/domain/model/booking"
	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/messaging"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/domain/services"
	"opsboard/internal/core/ports"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrSubmitAlreadyInFlight is returned when a form submit is requested
	// while a previous one has not resolved yet.
	ErrSubmitAlreadyInFlight = errors.New("a form submit is already in flight")

	// ErrNoOrderAvailable is returned when a workflow intent arrives while
	// the order collection is empty and no order can be addressed.
	ErrNoOrderAvailable = errors.New("no order available")
)

const (
	toastBookingSuccess = "Pickup booked successfully!"
	toastMessageSent    = "Message sent"
	toastOrdersUploaded = "Orders Uploaded!"
	toastSaveFailed     = "Could not save order"
)

// Config carries the controller's latencies, notification durations and the
// template catalogue. The latencies simulate the remote calls a production
// deployment would make.
type Config struct {
	SubmitLatency   time.Duration
	BookingLatency  time.Duration
	MessageLatency  time.Duration
	ToastDuration   time.Duration
	OverlayDuration time.Duration

	// Templates is the fixed catalogue of message templates offered to
	// operators. Sends must pick one of these verbatim.
	Templates []string

	// OnOverlayHidden, if set, is invoked every time the success overlay
	// auto-hides, so caller-held state can reset.
	OnOverlayHidden func()
}

// DefaultTemplates is the out-of-the-box template catalogue.
var DefaultTemplates = []string{
	"Your order is out for delivery.",
	"Your order will arrive in 10 minutes.",
	"The driver is at your doorstep.",
	"We are experiencing a slight delay. Thank you for your patience.",
}

// DefaultConfig returns the controller configuration used when nothing is
// overridden from the environment.
func DefaultConfig() Config {
	return Config{
		SubmitLatency:   1000 * time.Millisecond,
		BookingLatency:  1800 * time.Millisecond,
		MessageLatency:  1000 * time.Millisecond,
		ToastDuration:   2500 * time.Millisecond,
		OverlayDuration: 1200 * time.Millisecond,
		Templates:       DefaultTemplates,
	}
}

// Controller is the application's coordination point. It owns the pieces of
// state no single aggregate owns: which order is selected, the current
// search term, the booking and messaging workflows, and the transient
// notifications. Every intent and every delayed resolution runs under one
// mutex, so each observable state change is atomic.
//
// Delayed work goes through the Scheduler port; resolutions re-enter through
// the lock and present the attempt token issued when the work was scheduled,
// so anything the operator has since dismissed or superseded is discarded.
type Controller struct {
	mu sync.Mutex

	cfg    Config
	logger *slog.Logger

	repo      ports.OrderRepository
	scheduler ports.Scheduler
	quoter    services.PickupQuoter

	createOrder   commands.CreateOrderCommandHandler
	editOrder     commands.EditOrderCommandHandler
	appendMessage commands.AppendMessageCommandHandler
	searchOrders  queries.SearchOrdersQueryHandler
	orderSummary  queries.GetOrderSummaryQueryHandler

	selectedID kernel.OrderID
	searchTerm string

	booking   booking.Workflow
	sending   messaging.Workflow
	submitIn  bool
	submitSeq int

	toast         Toast
	toastDeadline time.Time

	overlayVisible  bool
	overlayDeadline time.Time
}

// NewController wires the controller from its collaborators.
func NewController(
	repo ports.OrderRepository,
	scheduler ports.Scheduler,
	quoter services.PickupQuoter,
	createOrder commands.CreateOrderCommandHandler,
	editOrder commands.EditOrderCommandHandler,
	appendMessage commands.AppendMessageCommandHandler,
	searchOrders queries.SearchOrdersQueryHandler,
	orderSummary queries.GetOrderSummaryQueryHandler,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		cfg:           cfg,
		logger:        logger.With("component", "controller"),
		repo:          repo,
		scheduler:     scheduler,
		quoter:        quoter,
		createOrder:   createOrder,
		editOrder:     editOrder,
		appendMessage: appendMessage,
		searchOrders:  searchOrders,
		orderSummary:  orderSummary,
	}
}

// Select makes the given order the selected one. Selecting an id that does
// not exist fails with a not-found error and leaves the selection unchanged.
func (c *Controller) Select(ctx context.Context, id kernel.OrderID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	exists, err := c.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	c.selectedID = id
	return nil
}

// SetSearchTerm records the operator's search input. The raw term is kept;
// normalization happens inside the search query.
func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchTerm = term
}

// SearchTerm returns the raw search input.
func (c *Controller) SearchTerm() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.searchTerm
}

// SubmitAdd accepts a validated create-order form and schedules the
// simulated save. While the save is pending, Submitting reports true and
// further submits are rejected. On resolution the new order is inserted,
// selected, and the success overlay pulses.
func (c *Controller) SubmitAdd(cmd commands.CreateOrderCommand) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := cmd.Validate(); err != nil {
		return err
	}
	if c.submitIn {
		return ErrSubmitAlreadyInFlight
	}

	c.submitIn = true
	c.submitSeq++
	token := c.submitSeq

	c.scheduler.Schedule(c.cfg.SubmitLatency, func() {
		c.resolveAdd(token, cmd)
	})
	return nil
}

// SubmitEdit accepts a validated edit-order form and schedules the simulated
// save. On resolution the order's four mutable fields are replaced and the
// success overlay pulses; the selection does not move.
func (c *Controller) SubmitEdit(cmd commands.EditOrderCommand) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := cmd.Validate(); err != nil {
		return err
	}
	if c.submitIn {
		return ErrSubmitAlreadyInFlight
	}

	c.submitIn = true
	c.submitSeq++
	token := c.submitSeq

	c.scheduler.Schedule(c.cfg.SubmitLatency, func() {
		c.resolveEdit(token, cmd)
	})
	return nil
}

// Submitting reports whether a form save is pending.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.submitIn
}

func (c *Controller) resolveAdd(token int, cmd commands.CreateOrderCommand) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.submitIn || token != c.submitSeq {
		return
	}
	c.submitIn = false

	created, err := c.createOrder.Handle(context.Background(), cmd)
	if err != nil {
		// The form already passed validation, so a failure here (such as an
		// operator-supplied id that now collides) happens after the submit
		// was accepted. An error toast keeps it visible to the operator.
		c.logger.Error("order creation failed", "error", err)
		c.showToast(toastSaveFailed, ToastError, time.Now())
		return
	}

	c.selectedID = created.ID()
	c.showOverlay(time.Now())
	c.logger.Info("order created", "orderId", created.ID().String())
}

func (c *Controller) resolveEdit(token int, cmd commands.EditOrderCommand) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.submitIn || token != c.submitSeq {
		return
	}
	c.submitIn = false

	updated, err := c.editOrder.Handle(context.Background(), cmd)
	if err != nil {
		c.logger.Error("order edit failed", "error", err, "orderId", cmd.OrderID().String())
		c.showToast(toastSaveFailed, ToastError, time.Now())
		return
	}

	c.showOverlay(time.Now())
	c.logger.Info("order updated", "orderId", updated.ID().String())
}

// RequestBooking starts a pickup booking for the selected order, moving the
// booking workflow to Loading synchronously and scheduling the simulated
// quote call. Fails if a booking is already open or no order is addressable.
func (c *Controller) RequestBooking(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.resolveSelected(ctx)
	if err != nil {
		return err
	}

	token, err := c.booking.Begin(target.ID())
	if err != nil {
		return err
	}

	targetID := target.ID()
	c.scheduler.Schedule(c.cfg.BookingLatency, func() {
		c.resolveBooking(token, targetID)
	})
	return nil
}

// DismissBooking closes the booking view from any state, discarding the
// quote. A resolution still in flight for the dismissed attempt will be
// rejected by its stale token.
func (c *Controller) DismissBooking() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.booking.Dismiss()
}

// BookingState returns the booking workflow's current state.
func (c *Controller) BookingState() booking.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.booking.State()
}

// BookingResult returns the quote carried by a successful booking,
// or false in any other state.
func (c *Controller) BookingResult() (booking.Quote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.booking.Result()
}

func (c *Controller) resolveBooking(token int, targetID kernel.OrderID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.repo.Get(context.Background(), targetID)
	if err != nil {
		c.logger.Warn("booking target vanished", "error", err)
		c.abandonBooking(token)
		return
	}

	quote, err := c.quoter.Quote(target)
	if err != nil {
		c.logger.Error("pickup quoting failed", "error", err)
		c.abandonBooking(token)
		return
	}

	if err = c.booking.Resolve(token, quote); err != nil {
		c.logger.Debug("discarding stale booking resolution", "error", err)
		return
	}

	c.showToast(toastBookingSuccess, ToastSuccess, time.Now())
	c.logger.Info("pickup booked",
		"orderId", target.ID().String(),
		"price", quote.Price(),
		"etaMinutes", quote.EtaMinutes(),
	)
}

// abandonBooking closes the booking view for a failed attempt without
// touching a newer attempt the operator may have started since. The
// token-guarded Resolve proves the attempt is still current before the view
// closes; both steps happen under the lock, so the intermediate Success
// state is never observable. Callers must hold the controller lock.
func (c *Controller) abandonBooking(token int) {
	if c.booking.Resolve(token, booking.Quote{}) == nil {
		c.booking.Dismiss()
	}
}

// SendTemplate starts a templated-message send to the selected order. The
// template must come from the configured catalogue verbatim. Only one send
// may be in flight; concurrent requests are rejected, never queued.
func (c *Controller) SendTemplate(ctx context.Context, template string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.templateKnown(template) {
		return errs.NewValueIsInvalidError("template")
	}

	target, err := c.resolveSelected(ctx)
	if err != nil {
		return err
	}

	token, err := c.sending.Begin(target.ID(), template)
	if err != nil {
		return err
	}

	targetID := target.ID()
	c.scheduler.Schedule(c.cfg.MessageLatency, func() {
		c.resolveSend(token, targetID, template)
	})
	return nil
}

// SendingTemplate returns the template currently being sent,
// or "" when no send is in flight.
func (c *Controller) SendingTemplate() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sending.Template()
}

// Templates returns a copy of the configured template catalogue.
func (c *Controller) Templates() []string {
	templates := make([]string, len(c.cfg.Templates))
	copy(templates, c.cfg.Templates)
	return templates
}

func (c *Controller) templateKnown(template string) bool {
	for _, t := range c.cfg.Templates {
		if t == template {
			return true
		}
	}
	return false
}

func (c *Controller) resolveSend(token int, targetID kernel.OrderID, template string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Resolving first proves this attempt is still the current one; a stale
	// token must never append anything. The marker clears and the message
	// lands under the same lock hold, so the order is not observable.
	if err := c.sending.Resolve(token); err != nil {
		c.logger.Debug("discarding stale send resolution", "error", err)
		return
	}

	cmd, err := commands.NewAppendMessageCommand(targetID, template)
	if err != nil {
		c.logger.Error("building append command failed", "error", err)
		return
	}

	if _, err = c.appendMessage.Handle(context.Background(), cmd); err != nil {
		// The order vanished mid-send; the marker stays cleared so the
		// template becomes selectable again.
		c.logger.Warn("message send failed", "error", err)
		return
	}

	c.showToast(toastMessageSent, ToastSuccess, time.Now())
}

// TriggerBulkUpload acknowledges a bulk upload request. The upload itself is
// simulated; the only observable effect is the confirmation toast.
func (c *Controller) TriggerBulkUpload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.showToast(toastOrdersUploaded, ToastSuccess, time.Now())
	c.logger.Info("bulk upload acknowledged")
}

// Orders returns the order list filtered by the current search term,
// most recent first.
func (c *Controller) Orders(ctx context.Context) ([]*order.Order, error) {
	c.mu.Lock()
	term := c.searchTerm
	c.mu.Unlock()

	return c.searchOrders.Handle(ctx, queries.NewSearchOrdersQuery(term))
}

// Order returns a single order by id.
func (c *Controller) Order(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	return c.repo.Get(ctx, id)
}

// SelectedOrder resolves the current selection. A selection that no longer
// matches any order falls back to the most recent order; an empty collection
// yields nil without error.
func (c *Controller) SelectedOrder(ctx context.Context) (*order.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target, err := c.resolveSelected(ctx)
	if errors.Is(err, ErrNoOrderAvailable) {
		return nil, nil
	}
	return target, err
}

// Summary returns the pending and in-transit counts.
func (c *Controller) Summary(ctx context.Context) (queries.GetOrderSummaryQueryResponse, error) {
	return c.orderSummary.Handle(ctx, queries.NewGetOrderSummaryQuery())
}

// resolveSelected returns the selected order, falling back to the most
// recent order when the selection is empty or stale. Callers must hold the
// controller lock.
func (c *Controller) resolveSelected(ctx context.Context) (*order.Order, error) {
	if c.selectedID.Validate() == nil {
		if target, err := c.repo.Get(ctx, c.selectedID); err == nil {
			return target, nil
		}
	}

	snapshot, err := c.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, ErrNoOrderAvailable
	}

	c.selectedID = snapshot[0].ID()
	return snapshot[0], nil
}
