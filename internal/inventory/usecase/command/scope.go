package command

import (
	"context"

	"github.com/storetrack/storetrack/internal/inventory/domain"
)

// TransactionScope runs a function against a ledger bound to one database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise, so a failed reconciliation leaves no partial state.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(ledger domain.Ledger) error) error
}
