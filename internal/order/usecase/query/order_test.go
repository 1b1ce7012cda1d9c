package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storetrack/storetrack/internal/order/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

type filterRecorder struct {
	filter domain.OrderFilter
}

func (r *filterRecorder) Create(ctx context.Context, order *domain.Order) error       { return nil }
func (r *filterRecorder) CreateItems(ctx context.Context, items []domain.OrderItem) error { return nil }
func (r *filterRecorder) UpdateTotal(ctx context.Context, orderID uint, total float64) error {
	return nil
}
func (r *filterRecorder) UpdateStatus(ctx context.Context, orderID uint, status domain.Status) error {
	return nil
}
func (r *filterRecorder) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return nil, nil
}
func (r *filterRecorder) FindByIDForUpdate(ctx context.Context, id uint) (*domain.Order, error) {
	return nil, nil
}
func (r *filterRecorder) FindByStatuses(ctx context.Context, statuses []domain.Status, start, end *time.Time) ([]domain.Order, error) {
	return nil, nil
}

func (r *filterRecorder) FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	r.filter = filter
	return nil, nil
}

func TestListOrdersStatusFilter(t *testing.T) {
	repo := &filterRecorder{}
	handler := NewListOrdersHandler(repo)

	_, err := handler.Handle(context.Background(), ListOrdersQuery{Status: "Shipped"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, repo.filter.Status)
}

func TestListOrdersAllMeansNoStatusFilter(t *testing.T) {
	repo := &filterRecorder{}
	handler := NewListOrdersHandler(repo)

	for _, raw := range []string{"", "All"} {
		_, err := handler.Handle(context.Background(), ListOrdersQuery{Status: raw})
		require.NoError(t, err, "status=%q", raw)
		assert.Equal(t, domain.Status(""), repo.filter.Status, "status=%q", raw)
	}
}

func TestListOrdersRejectsUnknownStatus(t *testing.T) {
	handler := NewListOrdersHandler(&filterRecorder{})

	_, err := handler.Handle(context.Background(), ListOrdersQuery{Status: "Done"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.StatusCode(err))
}
