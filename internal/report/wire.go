//go:build wireinject
// +build wireinject

package report

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	catalogdomain "github.com/storetrack/storetrack/internal/catalog/domain"
	catalogrepo "github.com/storetrack/storetrack/internal/catalog/repository"
	orderdomain "github.com/storetrack/storetrack/internal/order/domain"
	orderrepo "github.com/storetrack/storetrack/internal/order/repository"
	"github.com/storetrack/storetrack/internal/report/cache"
	httpDelivery "github.com/storetrack/storetrack/internal/report/delivery/http"
	"github.com/storetrack/storetrack/internal/report/usecase/query"
)

// ProvideOrderRepository provides the order repository for report queries
func ProvideOrderRepository(db *gorm.DB) orderdomain.OrderRepository {
	return orderrepo.NewGormOrderRepository(db)
}

// ProvideProductRepository provides the product repository for report queries
func ProvideProductRepository(db *gorm.DB) catalogdomain.ProductRepository {
	return catalogrepo.NewGormProductRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideProductRepository,
)

var HandlerSet = wire.NewSet(
	query.NewSalesReportHandler,
	query.NewLowStockHandler,
)

// InitializeHandler initializes the report HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB, reportCache *cache.ReportCache) (*httpDelivery.ReportHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		httpDelivery.NewReportHandler,
	)
	return nil, nil
}
