package model

import "time"

// PlaceOrderRequest is the inbound payload of the order intake endpoint.
type PlaceOrderRequest struct {
	CustomerID string  `json:"customerId"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

// PlaceOrderResponse acknowledges that an order was accepted and queued.
type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// OrderEvent is the message payload exchanged over the orders queue.
type OrderEvent struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Item       string    `json:"item"`
	Quantity   int       `json:"quantity"`
	Total      float64   `json:"total"`
	PlacedAt   time.Time `json:"placedAt"`
}

// DigestEvent is the message payload sent by the daily digest schedule.
type DigestEvent struct {
	RequestID   string    `json:"requestId"`
	GeneratedAt time.Time `json:"generatedAt"`
}
