package commands

import (
	"errors"
	"strings"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
)

// EditOrderCommand represents an edit-order form submission. It patches the
// four mutable fields of an existing order: customer name, customer phone,
// address, and status. Identity, pickup time, and the message log are not
// part of the patch and cannot be changed.
//
// Example:
//
//	cmd, err := NewEditOrderCommand(selectedID, "John Smith",
//	    "+91 9111111111", "44 Residency Road", "In Transit")
//	if err != nil {
//	    return fmt.Errorf("invalid order form: %w", err)
//	}
//
//	handler := NewEditOrderCommandHandler(repo)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to edit order: %w", err)
//	}
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.OrderID
	customerName  string
	customerPhone kernel.Phone
	address       string
	status        order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command from raw form values.
// Returns a validation error if any field is missing or malformed.
func NewEditOrderCommand(
	orderID kernel.OrderID,
	customerName string,
	customerPhone string,
	address string,
	status string,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setAddress(address),
		cmd.setStatus(status),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being edited.
func (c EditOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerName returns the new recipient name.
func (c EditOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the new validated phone number.
func (c EditOrderCommand) CustomerPhone() kernel.Phone {
	return c.customerPhone
}

// Address returns the new delivery address.
func (c EditOrderCommand) Address() string {
	return c.address
}

// Status returns the new delivery status.
func (c EditOrderCommand) Status() order.Status {
	return c.status
}

func (c *EditOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *EditOrderCommand) setCustomerPhone(customerPhone string) error {
	phone, err := kernel.NewPhone(customerPhone)
	if err != nil {
		return err
	}

	c.customerPhone = phone
	return nil
}

func (c *EditOrderCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *EditOrderCommand) setStatus(status string) error {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
