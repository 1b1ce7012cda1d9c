package kafka

import "time"

// MovementAppliedEvent represents a committed inventory movement
type MovementAppliedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	MovementID uint      `json:"movement_id"`
	ProductID  uint      `json:"product_id"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Note       string    `json:"note"`
	Timestamp  time.Time `json:"timestamp"`
}

// OrderStatusChangedEvent represents a committed order status transition
type OrderStatusChangedEvent struct {
	EventID      string    `json:"event_id"`
	EventType    string    `json:"event_type"`
	OrderID      uint      `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	TotalAmount  float64   `json:"total_amount"`
	Timestamp    time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeMovementApplied    = "inventory.movement_applied"
	EventTypeOrderStatusChanged = "order.status_changed"
)

// Kafka topics
const (
	TopicInventoryMovements = "inventory-movements"
	TopicOrderStatus        = "order-status"
)
