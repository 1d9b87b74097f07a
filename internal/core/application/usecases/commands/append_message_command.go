package commands

import (
	"errors"
	"strings"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var (
	ErrAppendMessageCommandIsNotConstructed = errors.New(
		"AppendMessageCommand must be created via NewAppendMessageCommand constructor",
	)
)

// AppendMessageCommand represents a request to add one entry to an order's
// customer-facing message log. The text is usually a template from the
// configured catalogue but free-form text is accepted.
type AppendMessageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	text    string

	guard guard.ConstructorGuard
}

// NewAppendMessageCommand creates a command to append a log message.
// The order id must be valid and the text non-empty.
func NewAppendMessageCommand(orderID kernel.OrderID, text string) (AppendMessageCommand, error) {
	cmd := AppendMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setText(text),
	); err != nil {
		return AppendMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAppendMessageCommandIsNotConstructed if validation fails.
func (c AppendMessageCommand) Validate() error {
	return c.guard.Validate(ErrAppendMessageCommandIsNotConstructed)
}

// OrderID returns the id of the order receiving the message.
func (c AppendMessageCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Text returns the message body.
func (c AppendMessageCommand) Text() string {
	return c.text
}

func (c *AppendMessageCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AppendMessageCommand) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("messageText")
	}

	c.text = text
	return nil
}
