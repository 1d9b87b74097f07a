package commands

import (
	"errors"
	"strings"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents an add-order form submission. It is the
// explicit draft type: unlike a persisted order it has no message log, its id
// may be empty (the system assigns one), and its pickup time may be unset
// (captured at creation).
//
// All form validation happens here, so a constructed command is guaranteed
// submittable: name and address non-empty, phone matching the accepted
// pattern, status one of the enumerated values.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("", "Jane Doe", "+91 9000000000",
//	    "12 MG Road, Bengaluru", "Pending", time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid order form: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requestedID   string
	customerName  string
	customerPhone kernel.Phone
	address       string
	status        order.Status
	pickupTime    time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from raw form values.
//
// An empty requestedID means the system generates one. An empty status
// defaults to "Pending". A zero pickupTime means the creation time is used.
// Returns a validation error if any required field is missing or malformed.
func NewCreateOrderCommand(
	requestedID string,
	customerName string,
	customerPhone string,
	address string,
	status string,
	pickupTime time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestedID(requestedID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setAddress(address),
		cmd.setStatus(status),
		cmd.setPickupTime(pickupTime),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// RequestedID returns the operator-supplied order id, or "" when the system
// should generate one.
func (c CreateOrderCommand) RequestedID() string {
	return c.requestedID
}

// CustomerName returns the recipient name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the validated phone number.
func (c CreateOrderCommand) CustomerPhone() kernel.Phone {
	return c.customerPhone
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Status returns the initial delivery status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// PickupTime returns the requested pickup window, or the zero time when the
// creation time should be used.
func (c CreateOrderCommand) PickupTime() time.Time {
	return c.pickupTime
}

func (c *CreateOrderCommand) setRequestedID(requestedID string) error {
	c.requestedID = strings.TrimSpace(requestedID)
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(customerPhone string) error {
	phone, err := kernel.NewPhone(customerPhone)
	if err != nil {
		return err
	}

	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		c.status = order.Pending
		return nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}

func (c *CreateOrderCommand) setPickupTime(pickupTime time.Time) error {
	c.pickupTime = pickupTime
	return nil
}
