//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/storetrack/storetrack/internal/catalog/delivery/http"
	"github.com/storetrack/storetrack/internal/catalog/domain"
	"github.com/storetrack/storetrack/internal/catalog/repository"
	"github.com/storetrack/storetrack/internal/catalog/usecase/command"
	"github.com/storetrack/storetrack/internal/catalog/usecase/query"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return repository.NewGormCategoryRepository(db)
}

// ProvideTransactionScope provides the catalog transaction scope
func ProvideTransactionScope(db *gorm.DB) command.TransactionScope {
	return repository.NewGormTransactionScope(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
	ProvideTransactionScope,
)

var HandlerSet = wire.NewSet(
	command.NewCreateProductHandler,
	command.NewUpdateProductHandler,
	command.NewDeleteProductHandler,
	command.NewCreateCategoryHandler,
	command.NewUpdateCategoryHandler,
	command.NewDeleteCategoryHandler,
	query.NewGetProductHandler,
	query.NewListProductsHandler,
	query.NewGetCategoryHandler,
	query.NewListCategoriesHandler,
)

// InitializeHandler initializes the catalog HTTP handler with all dependencies
func InitializeHandler(db *gorm.DB) (*httpDelivery.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		httpDelivery.NewCatalogHandler,
	)
	return nil, nil
}
