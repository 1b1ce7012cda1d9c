package domain

import (
	"context"
	"time"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
)

// Direction classifies a stock movement
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// Valid reports whether the direction is one of IN/OUT.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Source document classifications carried on movements.
const (
	SourceInitialStock     = "Initial Stock"
	SourceManualAdjustment = "Manual Adjustment"
	SourceOrder            = "Order"
)

// Movement is an append-only ledger entry recording one stock change and its
// cause. Movements are never updated; they are deleted only as a cascade of
// product deletion.
type Movement struct {
	ID                 uint             `json:"id" gorm:"primaryKey"`
	ProductID          uint             `json:"productId" gorm:"not null;index"`
	Type               Direction        `json:"type" gorm:"type:varchar(8);not null"`
	Quantity           int              `json:"quantity" gorm:"not null"`
	Date               time.Time        `json:"date" gorm:"not null"`
	Note               string           `json:"note"`
	SourceDocumentType string           `json:"sourceDocumentType"`
	Product            *catalog.Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName specifies the table name
func (Movement) TableName() string {
	return "inventory_movements"
}

// MovementRepository defines read access to the movement ledger
type MovementRepository interface {
	FindAll(ctx context.Context) ([]Movement, error)
	FindByProductID(ctx context.Context, productID uint) ([]Movement, error)
}
