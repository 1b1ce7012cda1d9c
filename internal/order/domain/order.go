package domain

import (
	"context"
	"time"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
)

// Order is a customer order. TotalAmount is fixed at creation time from the
// price snapshots of its items and is not recomputed on status changes.
type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	CustomerName string      `json:"customerName" gorm:"not null"`
	OrderDate    time.Time   `json:"orderDate" gorm:"not null;index"`
	TotalAmount  float64     `json:"totalAmount" gorm:"not null;default:0"`
	Status       Status      `json:"status" gorm:"type:varchar(16);not null;default:'Pending'"`
	Items        []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one order line with the unit price captured at order time,
// decoupling historical revenue from later catalog price changes. Immutable
// once created.
type OrderItem struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	OrderID      uint             `json:"orderId" gorm:"not null;index"`
	ProductID    uint             `json:"productId" gorm:"not null;index"`
	Quantity     int              `json:"quantity" gorm:"not null"`
	PriceAtOrder float64          `json:"priceAtOrder" gorm:"not null"`
	Product      *catalog.Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	CustomerName string
	Status       Status
	Start        *time.Time
	End          *time.Time
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	CreateItems(ctx context.Context, items []OrderItem) error
	UpdateTotal(ctx context.Context, orderID uint, total float64) error
	UpdateStatus(ctx context.Context, orderID uint, status Status) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)
	FindByStatuses(ctx context.Context, statuses []Status, start, end *time.Time) ([]Order, error)
}
