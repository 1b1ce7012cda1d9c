package query

import (
	"context"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
)

// DefaultLowStockThreshold is used when the request does not supply one.
const DefaultLowStockThreshold = 5

// LowStockQuery represents the query for products at or below a threshold
type LowStockQuery struct {
	Threshold int
}

// LowStockHandler lists products running low, lowest quantity first
type LowStockHandler struct {
	products catalog.ProductRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(products catalog.ProductRepository) *LowStockHandler {
	return &LowStockHandler{products: products}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(ctx context.Context, q LowStockQuery) ([]catalog.Product, error) {
	threshold := q.Threshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return h.products.FindLowStock(ctx, threshold)
}
