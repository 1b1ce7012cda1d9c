//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/storetrack/storetrack/internal/order/delivery/http"
	"github.com/storetrack/storetrack/internal/order/domain"
	"github.com/storetrack/storetrack/internal/order/repository"
	"github.com/storetrack/storetrack/internal/order/usecase/command"
	"github.com/storetrack/storetrack/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideTransactionScope provides the order transaction scope
func ProvideTransactionScope(db *gorm.DB) command.TransactionScope {
	return repository.NewGormTransactionScope(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideTransactionScope,
)

var HandlerSet = wire.NewSet(
	command.NewCreateOrderHandler,
	command.NewUpdateStatusHandler,
	query.NewGetOrderHandler,
	query.NewListOrdersHandler,
)

// InitializeHandler initializes the order HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB, publisher command.EventPublisher, cache command.ReportCache) (*httpDelivery.OrderHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		httpDelivery.NewOrderHandler,
	)
	return nil, nil
}
