package query

import (
	"context"
	"time"

	"github.com/storetrack/storetrack/internal/order/domain"
)

// GetOrderQuery represents the query to get an order by ID
type GetOrderQuery struct {
	ID uint
}

// GetOrderHandler handles get order queries
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, q GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByID(ctx, q.ID)
}

// ListOrdersQuery represents the query to list orders with optional filters
type ListOrdersQuery struct {
	CustomerName string
	Status       string
	Start        *time.Time
	End          *time.Time
}

// ListOrdersHandler handles order listing queries
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, q ListOrdersQuery) ([]domain.Order, error) {
	filter := domain.OrderFilter{
		CustomerName: q.CustomerName,
		Start:        q.Start,
		End:          q.End,
	}
	// "All" is the UI's explicit no-filter value.
	if q.Status != "" && q.Status != "All" {
		status, err := domain.ParseStatus(q.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	return h.repo.FindAll(ctx, filter)
}
