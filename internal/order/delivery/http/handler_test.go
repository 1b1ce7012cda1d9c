package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/internal/order/domain"
	"github.com/storetrack/storetrack/internal/order/usecase/command"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// stubState backs the minimal repository set needed to drive order creation
// through the HTTP layer.
type stubState struct {
	products map[uint]catalog.Product
	orders   map[uint]domain.Order
	items    []domain.OrderItem
	nextID   uint
}

type stubOrders struct{ state *stubState }

func (r *stubOrders) Create(ctx context.Context, order *domain.Order) error {
	order.ID = r.state.nextID
	r.state.nextID++
	r.state.orders[order.ID] = *order
	return nil
}

func (r *stubOrders) CreateItems(ctx context.Context, items []domain.OrderItem) error {
	r.state.items = append(r.state.items, items...)
	return nil
}

func (r *stubOrders) UpdateTotal(ctx context.Context, orderID uint, total float64) error {
	o := r.state.orders[orderID]
	o.TotalAmount = total
	r.state.orders[orderID] = o
	return nil
}

func (r *stubOrders) UpdateStatus(ctx context.Context, orderID uint, status domain.Status) error {
	o := r.state.orders[orderID]
	o.Status = status
	r.state.orders[orderID] = o
	return nil
}

func (r *stubOrders) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	o, ok := r.state.orders[id]
	if !ok {
		return nil, apperror.NotFound("Order with id=%d not found", id)
	}
	for _, item := range r.state.items {
		if item.OrderID == id {
			o.Items = append(o.Items, item)
		}
	}
	return &o, nil
}

func (r *stubOrders) FindByIDForUpdate(ctx context.Context, id uint) (*domain.Order, error) {
	return r.FindByID(ctx, id)
}

func (r *stubOrders) FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return nil, nil
}

func (r *stubOrders) FindByStatuses(ctx context.Context, statuses []domain.Status, start, end *time.Time) ([]domain.Order, error) {
	return nil, nil
}

type stubLedger struct{ state *stubState }

func (l *stubLedger) ProductForUpdate(ctx context.Context, productID uint) (*catalog.Product, error) {
	p, ok := l.state.products[productID]
	if !ok {
		return nil, apperror.NotFound("Product with id=%d not found", productID)
	}
	return &p, nil
}

func (l *stubLedger) SetProductQuantity(ctx context.Context, productID uint, quantity int) error {
	return nil
}
func (l *stubLedger) Append(ctx context.Context, movement *inventory.Movement) error { return nil }
func (l *stubLedger) DeleteByProduct(ctx context.Context, productID uint) error      { return nil }

type stubTx struct{ state *stubState }

func (t *stubTx) Orders() domain.OrderRepository { return &stubOrders{state: t.state} }
func (t *stubTx) Ledger() inventory.Ledger       { return &stubLedger{state: t.state} }

type stubScope struct{ state *stubState }

func (s *stubScope) Execute(ctx context.Context, fn func(repos command.TxRepositories) error) error {
	return fn(&stubTx{state: s.state})
}

func newOrderRouter(state *stubState) *mux.Router {
	create := command.NewCreateOrderHandler(&stubScope{state: state}, &stubOrders{state: state})
	handler := NewOrderHandler(create, nil, nil, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func TestCreateOrderAcceptsItemsKey(t *testing.T) {
	state := &stubState{
		products: map[uint]catalog.Product{1: {ID: 1, Name: "Keyboard", Price: 49.90, Quantity: 10}},
		orders:   make(map[uint]domain.Order),
		nextID:   1,
	}
	router := newOrderRouter(state)

	body := `{"customerName":"Ada","items":[{"productId":1,"quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID          uint    `json:"id"`
			TotalAmount float64 `json:"totalAmount"`
			Status      string  `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Pending", resp.Data.Status)
	assert.InDelta(t, 99.80, resp.Data.TotalAmount, 1e-9)

	require.Len(t, state.orders, 1)
	require.Len(t, state.items, 1)
	assert.Equal(t, 2, state.items[0].Quantity)
}

func TestCreateOrderRejectsMissingItems(t *testing.T) {
	state := &stubState{
		products: map[uint]catalog.Product{1: {ID: 1, Name: "Keyboard", Price: 49.90, Quantity: 10}},
		orders:   make(map[uint]domain.Order),
		nextID:   1,
	}
	router := newOrderRouter(state)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"customerName":"Ada"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, state.orders)
}
