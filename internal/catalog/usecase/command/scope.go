package command

import (
	"context"

	"github.com/storetrack/storetrack/internal/catalog/domain"
	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
)

// TxRepositories is the transactional view used by catalog commands. All
// repositories share one database transaction.
type TxRepositories interface {
	Products() domain.ProductRepository
	Categories() domain.CategoryRepository
	Ledger() inventory.Ledger
}

// TransactionScope runs a function within a database transaction, committing
// on nil and rolling back on error.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TxRepositories) error) error
}
