// Package seed populates the in-memory order collection with a starting
// data set, so a fresh process has orders to browse, book and message.
package seed

import (
	"context"
	"fmt"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
	"opsboard/internal/core/ports"
)

type seedOrder struct {
	id           string
	customerName string
	phone        string
	address      string
	status       order.Status
	pickupOffset time.Duration
	messages     []string
}

// The newest order sits last here so that, once each Add prepends, the
// collection comes out most-recent-first with OD10004 at the head.
var seedOrders = []seedOrder{
	{
		id:           "OD10001",
		customerName: "Priya Sharma",
		phone:        "+91 98765 43210",
		address:      "221 Brigade Road, Bengaluru",
		status:       order.Delivered,
		pickupOffset: -26 * time.Hour,
		messages: []string{
			order.CreatedMessageText,
			"Your order is out for delivery.",
		},
	},
	{
		id:           "OD10002",
		customerName: "Amit Patel",
		phone:        "+91 91234 56789",
		address:      "14 Church Street, Bengaluru",
		status:       order.InTransit,
		pickupOffset: -3 * time.Hour,
		messages: []string{
			order.CreatedMessageText,
			"Your order will arrive in 10 minutes.",
		},
	},
	{
		id:           "OD10003",
		customerName: "Sneha Reddy",
		phone:        "+91 99887 76655",
		address:      "8 Indiranagar 100 Feet Road, Bengaluru",
		status:       order.Pending,
		pickupOffset: -45 * time.Minute,
		messages:     []string{order.CreatedMessageText},
	},
	{
		id:           "OD10004",
		customerName: "Rahul Verma",
		phone:        "+91 90000 11122",
		address:      "52 MG Road, Bengaluru",
		status:       order.Pending,
		pickupOffset: -10 * time.Minute,
		messages:     []string{order.CreatedMessageText},
	},
}

// Orders inserts the starting data set into the given repository.
func Orders(ctx context.Context, repo ports.OrderRepository) error {
	now := time.Now()

	for _, s := range seedOrders {
		orderID, err := kernel.NewOrderID(s.id)
		if err != nil {
			return fmt.Errorf("seed order %s: %w", s.id, err)
		}

		phone, err := kernel.NewPhone(s.phone)
		if err != nil {
			return fmt.Errorf("seed order %s: %w", s.id, err)
		}

		aggregate, err := order.NewOrder(
			orderID, s.customerName, phone, s.address, s.status, now.Add(s.pickupOffset),
		)
		if err != nil {
			return fmt.Errorf("seed order %s: %w", s.id, err)
		}

		for i, text := range s.messages {
			message, err := order.NewMessage(text, now.Add(s.pickupOffset+time.Duration(i)*time.Minute))
			if err != nil {
				return fmt.Errorf("seed order %s: %w", s.id, err)
			}
			if err = aggregate.AppendMessage(message); err != nil {
				return fmt.Errorf("seed order %s: %w", s.id, err)
			}
		}

		if err = repo.Add(ctx, aggregate); err != nil {
			return fmt.Errorf("seed order %s: %w", s.id, err)
		}
	}

	return nil
}
