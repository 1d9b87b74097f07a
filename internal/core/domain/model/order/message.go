package order

import (
	"strings"
	"time"

	"opsboard/internal/pkg/errs"

	"github.com/google/uuid"
)

// CreatedMessageText is the system message attached to every new order.
const CreatedMessageText = "Order created successfully."

// Message is a single immutable entry in an order's customer-facing log.
// Each message carries its own unique identity and the time it was appended.
// Messages are owned exclusively by their parent Order and are never edited
// or removed once appended.
type Message struct {
	id        uuid.UUID
	text      string
	timestamp time.Time
}

// NewMessage creates a log message with a fresh identity.
// The text must not be empty.
func NewMessage(text string, timestamp time.Time) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, errs.NewValueIsRequiredError("messageText")
	}
	return Message{
		id:        uuid.New(),
		text:      text,
		timestamp: timestamp,
	}, nil
}

// ID returns the message's unique identifier.
func (m Message) ID() uuid.UUID {
	return m.id
}

// Text returns the message body.
func (m Message) Text() string {
	return m.text
}

// Timestamp returns when the message was appended.
func (m Message) Timestamp() time.Time {
	return m.timestamp
}
