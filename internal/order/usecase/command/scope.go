package command

import (
	"context"

	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/internal/order/domain"
)

// TxRepositories is the transactional view used by order commands. The order
// repository and the inventory ledger share one database transaction so an
// order and its stock effects commit together.
type TxRepositories interface {
	Orders() domain.OrderRepository
	Ledger() inventory.Ledger
}

// TransactionScope runs a function within a database transaction, committing
// on nil and rolling back on error.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TxRepositories) error) error
}
