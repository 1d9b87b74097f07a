package order

import (
	"errors"
	"strings"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order in the system. It is the aggregate root
// that owns the customer details, the delivery status, and the append-only
// customer-facing message log.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer name, phone, and address are always present and valid
//   - Status is always one of the enumerated values
//   - The message log is append-only and never reordered
//   - Identity and pickup time are immutable after creation
//   - Can only be created through the NewOrder constructor
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order, immutable after creation
	id kernel.OrderID

	// customerName is the recipient's display name
	customerName string

	// customerPhone is the recipient's validated phone number
	customerPhone kernel.Phone

	// address is the free-text delivery address
	address string

	// status represents the current delivery state
	status Status

	// pickupTime is the scheduled pickup window, immutable after creation
	pickupTime time.Time

	// messages is the append-only customer-facing log, in chronological order
	messages []Message

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all invariants are maintained.
//
// Parameters:
//   - id: Unique identifier (system-generated or operator-supplied)
//   - customerName: Recipient name (must be non-empty after trimming)
//   - customerPhone: Validated phone number
//   - address: Delivery address (must be non-empty after trimming)
//   - status: Initial delivery status
//   - pickupTime: Scheduled pickup window (must be set)
//
// Returns the created order, or a validation error if any parameter is
// invalid. The new order starts with an empty message log; the creation
// workflow appends the initial system message.
func NewOrder(
	id kernel.OrderID,
	customerName string,
	customerPhone kernel.Phone,
	address string,
	status Status,
	pickupTime time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setAddress(address),
		o.setStatus(status),
		o.setPickupTime(pickupTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Clone returns a deep copy of the order. The message log's backing array is
// copied as well, so the clone and the original never share mutable state
// and each can be edited without the other observing a partial update.
func (o *Order) Clone() *Order {
	clone := *o
	clone.messages = make([]Message, len(o.messages))
	copy(clone.messages, o.messages)
	return &clone
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the recipient's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the recipient's phone number.
func (o *Order) CustomerPhone() kernel.Phone {
	return o.customerPhone
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// PickupTime returns the scheduled pickup window.
func (o *Order) PickupTime() time.Time {
	return o.pickupTime
}

// Messages returns a copy of the message log in chronological order.
// The returned slice may be modified freely without affecting the order.
func (o *Order) Messages() []Message {
	messages := make([]Message, len(o.messages))
	copy(messages, o.messages)
	return messages
}

// UpdateDetails applies an edit to the order's four mutable fields:
// customer name, customer phone, address, and status.
//
// Identity, pickup time, and the message log are never touched by an edit.
// All values are validated; on any failure the order is left unchanged.
func (o *Order) UpdateDetails(
	customerName string,
	customerPhone kernel.Phone,
	address string,
	status Status,
) error {
	updated := *o
	if err := errors.Join(
		updated.setCustomerName(customerName),
		updated.setCustomerPhone(customerPhone),
		updated.setAddress(address),
		updated.setStatus(status),
	); err != nil {
		return err
	}

	*o = updated
	return nil
}

// AppendMessage adds a message to the end of the order's log.
// Existing messages are never reordered or replaced.
func (o *Order) AppendMessage(message Message) error {
	if strings.TrimSpace(message.Text()) == "" {
		return errs.NewValueIsRequiredError("messageText")
	}

	o.messages = append(o.messages, message)
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = strings.TrimSpace(customerName)
	return nil
}

func (o *Order) setCustomerPhone(customerPhone kernel.Phone) error {
	if err := customerPhone.Validate(); err != nil {
		return err
	}
	o.customerPhone = customerPhone
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = strings.TrimSpace(address)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPickupTime(pickupTime time.Time) error {
	if pickupTime.IsZero() {
		return errs.NewValueIsRequiredError("pickupTime")
	}
	o.pickupTime = pickupTime
	return nil
}
