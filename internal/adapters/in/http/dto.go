package http

import (
	"time"

	"opsboard/internal/core/domain/model/order"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is one entry of an order's message log.
type MessageResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderResponse is the wire form of an order.
type OrderResponse struct {
	ID            string            `json:"id"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Address       string            `json:"address"`
	Status        string            `json:"status"`
	PickupTime    time.Time         `json:"pickupTime"`
	Messages      []MessageResponse `json:"messages"`
}

// OrderRequest is the payload for creating or editing an order. The id and
// pickupTime fields are only honored on creation; edits touch the four
// mutable fields.
type OrderRequest struct {
	ID            string    `json:"id,omitempty"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Address       string    `json:"address"`
	Status        string    `json:"status"`
	PickupTime    time.Time `json:"pickupTime,omitempty"`
}

// SearchRequest carries the operator's search input.
type SearchRequest struct {
	Term string `json:"term"`
}

// SummaryResponse carries the dashboard's derived counts and the id the
// selection currently resolves to, if any.
type SummaryResponse struct {
	PendingCount    int    `json:"pendingCount"`
	InTransitCount  int    `json:"inTransitCount"`
	SelectedOrderID string `json:"selectedOrderId,omitempty"`
}

// QuoteResponse is the transient result of a successful booking.
type QuoteResponse struct {
	Price      string `json:"price"`
	EtaMinutes int    `json:"etaMinutes"`
}

// BookingResponse is the booking view's wire form. Quote is only present in
// the success state.
type BookingResponse struct {
	State string         `json:"state"`
	Quote *QuoteResponse `json:"quote,omitempty"`
}

// TemplatesResponse lists the template catalogue and which template, if any,
// is currently being sent.
type TemplatesResponse struct {
	Templates []string `json:"templates"`
	Sending   string   `json:"sending,omitempty"`
}

// SendMessageRequest picks a template from the catalogue.
type SendMessageRequest struct {
	Template string `json:"template"`
}

// ToastResponse is the wire form of the transient toast.
type ToastResponse struct {
	Message string `json:"message,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Visible bool   `json:"visible"`
}

// NotificationsResponse bundles the toast and the success overlay state.
type NotificationsResponse struct {
	Toast          ToastResponse `json:"toast"`
	OverlayVisible bool          `json:"overlayVisible"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	messages := o.Messages()
	wire := make([]MessageResponse, len(messages))
	for i, m := range messages {
		wire[i] = MessageResponse{
			ID:        m.ID().String(),
			Text:      m.Text(),
			Timestamp: m.Timestamp(),
		}
	}

	return OrderResponse{
		ID:            o.ID().String(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone().String(),
		Address:       o.Address(),
		Status:        o.Status().String(),
		PickupTime:    o.PickupTime(),
		Messages:      wire,
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	wire := make([]OrderResponse, len(orders))
	for i, o := range orders {
		wire[i] = toOrderResponse(o)
	}
	return wire
}
