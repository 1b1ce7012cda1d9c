package command

import (
	"context"

	"github.com/storetrack/storetrack/pkg/apperror"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler deletes a product and its movement ledger in one
// transaction. Order items keep their rows; they carry their own price
// snapshot.
type DeleteProductHandler struct {
	scope TransactionScope
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(scope TransactionScope) *DeleteProductHandler {
	return &DeleteProductHandler{scope: scope}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID == 0 {
		return apperror.Validation("Product id is required")
	}

	return h.scope.Execute(ctx, func(repos TxRepositories) error {
		if _, err := repos.Ledger().ProductForUpdate(ctx, cmd.ID); err != nil {
			return err
		}
		if err := repos.Ledger().DeleteByProduct(ctx, cmd.ID); err != nil {
			return err
		}
		return repos.Products().Delete(ctx, cmd.ID)
	})
}
