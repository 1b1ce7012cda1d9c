//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/storetrack/storetrack/internal/inventory/delivery/http"
	"github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/internal/inventory/repository"
	"github.com/storetrack/storetrack/internal/inventory/usecase/command"
	"github.com/storetrack/storetrack/internal/inventory/usecase/query"
)

// ProvideMovementRepository provides the movement repository
func ProvideMovementRepository(db *gorm.DB) domain.MovementRepository {
	return repository.NewGormMovementRepository(db)
}

// ProvideTransactionScope provides the ledger transaction scope
func ProvideTransactionScope(db *gorm.DB) command.TransactionScope {
	return repository.NewGormTransactionScope(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideMovementRepository,
	ProvideTransactionScope,
)

var HandlerSet = wire.NewSet(
	command.NewApplyMovementHandler,
	query.NewListMovementsHandler,
)

// InitializeHandler initializes the inventory HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB, publisher command.EventPublisher) (*httpDelivery.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		httpDelivery.NewInventoryHandler,
	)
	return nil, nil
}
