package command

import (
	"context"
	"fmt"

	"github.com/storetrack/storetrack/internal/catalog/domain"
	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// UpdateProductCommand represents the command to update a product. Nil
// fields are left untouched.
type UpdateProductCommand struct {
	ID          uint
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
	CategoryID  *uint
}

// UpdateProductHandler handles product updates. A quantity change is
// reconciled through the ledger as a manual adjustment; all writes share one
// transaction.
type UpdateProductHandler struct {
	scope TransactionScope
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(scope TransactionScope) *UpdateProductHandler {
	return &UpdateProductHandler{scope: scope}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperror.Validation("Product id is required")
	}
	if cmd.Price != nil && *cmd.Price < 0 {
		return nil, apperror.Validation("Price cannot be negative")
	}
	if cmd.Quantity != nil && *cmd.Quantity < 0 {
		return nil, apperror.Validation("Quantity cannot be negative")
	}

	var updated *domain.Product

	err := h.scope.Execute(ctx, func(repos TxRepositories) error {
		product, err := repos.Ledger().ProductForUpdate(ctx, cmd.ID)
		if err != nil {
			return err
		}

		if cmd.Quantity != nil && *cmd.Quantity != product.Quantity {
			delta := *cmd.Quantity - product.Quantity
			direction := inventory.DirectionIn
			if delta < 0 {
				direction = inventory.DirectionOut
				delta = -delta
			}

			note := fmt.Sprintf("Stock adjusted manually. Old quantity: %d, New quantity: %d",
				product.Quantity, *cmd.Quantity)
			reconciled, _, err := inventory.Reconcile(ctx, repos.Ledger(), inventory.MovementRequest{
				ProductID:          product.ID,
				Type:               direction,
				Quantity:           delta,
				Note:               note,
				SourceDocumentType: inventory.SourceManualAdjustment,
			})
			if err != nil {
				return err
			}
			product.Quantity = reconciled.Quantity
		}

		if cmd.Name != nil {
			product.Name = *cmd.Name
		}
		if cmd.Description != nil {
			product.Description = *cmd.Description
		}
		if cmd.Price != nil {
			product.Price = *cmd.Price
		}
		if cmd.CategoryID != nil {
			if _, err := repos.Categories().FindByID(ctx, *cmd.CategoryID); err != nil {
				return err
			}
			product.CategoryID = *cmd.CategoryID
		}

		if err := repos.Products().Update(ctx, product); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
