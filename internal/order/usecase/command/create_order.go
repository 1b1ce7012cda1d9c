package command

import (
	"context"
	"strings"
	"time"

	"github.com/storetrack/storetrack/internal/order/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// OrderLine is one requested order line
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// CreateOrderCommand represents the command to create a new order
type CreateOrderCommand struct {
	CustomerName string
	Items        []OrderLine
}

// CreateOrderHandler creates orders. The order row, its items and the total
// are written in one transaction; stock is validated per line under a row
// lock but not deducted, since a pending order reserves nothing.
type CreateOrderHandler struct {
	scope TransactionScope
	repo  domain.OrderRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(scope TransactionScope, repo domain.OrderRepository) *CreateOrderHandler {
	return &CreateOrderHandler{scope: scope, repo: repo}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if strings.TrimSpace(cmd.CustomerName) == "" {
		return nil, apperror.Validation("Customer name and order items are required!")
	}
	if len(cmd.Items) == 0 {
		return nil, apperror.Validation("Customer name and order items are required!")
	}
	for _, line := range cmd.Items {
		if line.ProductID == 0 || line.Quantity <= 0 {
			return nil, apperror.Validation("Each order item needs a productId and a positive quantity")
		}
	}

	var orderID uint

	err := h.scope.Execute(ctx, func(repos TxRepositories) error {
		order := &domain.Order{
			CustomerName: cmd.CustomerName,
			OrderDate:    time.Now(),
			Status:       domain.StatusPending,
		}
		if err := repos.Orders().Create(ctx, order); err != nil {
			return err
		}

		items := make([]domain.OrderItem, 0, len(cmd.Items))
		var total float64
		for _, line := range cmd.Items {
			product, err := repos.Ledger().ProductForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if product.Quantity < line.Quantity {
				return apperror.InsufficientStock(product.Name, product.Quantity)
			}

			items = append(items, domain.OrderItem{
				OrderID:      order.ID,
				ProductID:    product.ID,
				Quantity:     line.Quantity,
				PriceAtOrder: product.Price,
			})
			total += product.Price * float64(line.Quantity)
		}

		if err := repos.Orders().CreateItems(ctx, items); err != nil {
			return err
		}
		if err := repos.Orders().UpdateTotal(ctx, order.ID, total); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Re-read outside the transaction so the response carries the items with
	// their products preloaded.
	return h.repo.FindByID(ctx, orderID)
}
