package domain

import (
	"context"
	"fmt"
	"time"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// Ledger is the transactional view used to reconcile a product quantity with
// its movement record. All methods operate on one database transaction; the
// product read takes a row-level lock so concurrent OUT movements serialize
// instead of both passing the stock check.
type Ledger interface {
	ProductForUpdate(ctx context.Context, productID uint) (*catalog.Product, error)
	SetProductQuantity(ctx context.Context, productID uint, quantity int) error
	Append(ctx context.Context, movement *Movement) error
	DeleteByProduct(ctx context.Context, productID uint) error
}

// MovementRequest describes a stock-affecting intent.
type MovementRequest struct {
	ProductID          uint
	Type               Direction
	Quantity           int
	Note               string
	SourceDocumentType string
}

// Reconcile validates the request against the locked product row, writes the
// new quantity and appends exactly one movement. Both writes share the
// ledger's transaction: they commit together or not at all.
func Reconcile(ctx context.Context, ledger Ledger, req MovementRequest) (*catalog.Product, *Movement, error) {
	if req.ProductID == 0 {
		return nil, nil, apperror.Validation("productId is required")
	}
	if !req.Type.Valid() {
		return nil, nil, apperror.Validation("Invalid movement type")
	}
	if req.Quantity <= 0 {
		return nil, nil, apperror.Validation("Movement quantity must be a positive integer")
	}

	product, err := ledger.ProductForUpdate(ctx, req.ProductID)
	if err != nil {
		return nil, nil, err
	}

	switch req.Type {
	case DirectionIn:
		product.Quantity += req.Quantity
	case DirectionOut:
		if product.Quantity < req.Quantity {
			return nil, nil, apperror.InsufficientStock(product.Name, product.Quantity)
		}
		product.Quantity -= req.Quantity
	}

	if err := ledger.SetProductQuantity(ctx, product.ID, product.Quantity); err != nil {
		return nil, nil, fmt.Errorf("failed to update product quantity: %w", err)
	}

	movement := &Movement{
		ProductID:          product.ID,
		Type:               req.Type,
		Quantity:           req.Quantity,
		Date:               time.Now(),
		Note:               req.Note,
		SourceDocumentType: req.SourceDocumentType,
	}
	if err := ledger.Append(ctx, movement); err != nil {
		return nil, nil, fmt.Errorf("failed to append movement: %w", err)
	}

	return product, movement, nil
}
