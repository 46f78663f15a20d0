package kafka

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedItem is one line of a placed order
type OrderPlacedItem struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderPlacedEvent is published after an order is committed
type OrderPlacedEvent struct {
	EventID     string            `json:"event_id"`
	EventType   string            `json:"event_type"`
	OrderID     uint              `json:"order_id"`
	Reference   string            `json:"reference"`
	UserID      uint              `json:"user_id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Items       []OrderPlacedItem `json:"items"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
)
