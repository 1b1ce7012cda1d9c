package query

import (
	"context"
	"fmt"

	"github.com/storetrack/storetrack/internal/inventory/domain"
)

// ListMovementsQuery represents the query to list ledger movements
type ListMovementsQuery struct {
	ProductID uint
}

// ListMovementsHandler handles list movements query
type ListMovementsHandler struct {
	repo domain.MovementRepository
}

// NewListMovementsHandler creates a new list movements handler
func NewListMovementsHandler(repo domain.MovementRepository) *ListMovementsHandler {
	return &ListMovementsHandler{repo: repo}
}

// Handle executes the list movements query
func (h *ListMovementsHandler) Handle(ctx context.Context, q ListMovementsQuery) ([]domain.Movement, error) {
	var (
		movements []domain.Movement
		err       error
	)
	if q.ProductID != 0 {
		movements, err = h.repo.FindByProductID(ctx, q.ProductID)
	} else {
		movements, err = h.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}
