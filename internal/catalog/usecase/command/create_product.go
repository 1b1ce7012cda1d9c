package command

import (
	"context"
	"strings"

	"github.com/storetrack/storetrack/internal/catalog/domain"
	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	CategoryID  uint
}

// CreateProductHandler handles product creation. The product row and its
// initial-stock movement are written in one transaction.
type CreateProductHandler struct {
	scope TransactionScope
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(scope TransactionScope) *CreateProductHandler {
	return &CreateProductHandler{scope: scope}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, apperror.Validation("Name, price, quantity, and categoryId are required!")
	}
	if cmd.CategoryID == 0 {
		return nil, apperror.Validation("Name, price, quantity, and categoryId are required!")
	}
	if cmd.Price < 0 {
		return nil, apperror.Validation("Price cannot be negative")
	}
	if cmd.Quantity < 0 {
		return nil, apperror.Validation("Quantity cannot be negative")
	}

	var created *domain.Product

	err := h.scope.Execute(ctx, func(repos TxRepositories) error {
		if _, err := repos.Categories().FindByID(ctx, cmd.CategoryID); err != nil {
			return err
		}

		// The initial stock enters through the ledger so that the quantity
		// is fully accounted for by movements.
		product := &domain.Product{
			Name:        cmd.Name,
			Description: cmd.Description,
			Price:       cmd.Price,
			Quantity:    0,
			CategoryID:  cmd.CategoryID,
		}
		if err := repos.Products().Create(ctx, product); err != nil {
			return err
		}

		if cmd.Quantity > 0 {
			updated, _, err := inventory.Reconcile(ctx, repos.Ledger(), inventory.MovementRequest{
				ProductID:          product.ID,
				Type:               inventory.DirectionIn,
				Quantity:           cmd.Quantity,
				Note:               "Initial stock on product creation",
				SourceDocumentType: inventory.SourceInitialStock,
			})
			if err != nil {
				return err
			}
			product.Quantity = updated.Quantity
		}

		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
