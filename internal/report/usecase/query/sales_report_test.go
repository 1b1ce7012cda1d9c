package query

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
	orderdomain "github.com/storetrack/storetrack/internal/order/domain"
)

type fakeOrders struct {
	orders []orderdomain.Order
}

func (r *fakeOrders) Create(ctx context.Context, order *orderdomain.Order) error { return nil }
func (r *fakeOrders) CreateItems(ctx context.Context, items []orderdomain.OrderItem) error {
	return nil
}
func (r *fakeOrders) UpdateTotal(ctx context.Context, orderID uint, total float64) error { return nil }
func (r *fakeOrders) UpdateStatus(ctx context.Context, orderID uint, status orderdomain.Status) error {
	return nil
}
func (r *fakeOrders) FindByID(ctx context.Context, id uint) (*orderdomain.Order, error) {
	return nil, nil
}
func (r *fakeOrders) FindByIDForUpdate(ctx context.Context, id uint) (*orderdomain.Order, error) {
	return nil, nil
}
func (r *fakeOrders) FindAll(ctx context.Context, filter orderdomain.OrderFilter) ([]orderdomain.Order, error) {
	return r.orders, nil
}

func (r *fakeOrders) FindByStatuses(ctx context.Context, statuses []orderdomain.Status, start, end *time.Time) ([]orderdomain.Order, error) {
	var out []orderdomain.Order
	for _, o := range r.orders {
		matched := false
		for _, s := range statuses {
			if o.Status == s {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if start != nil && o.OrderDate.Before(*start) {
			continue
		}
		if end != nil && o.OrderDate.After(*end) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func findSales(report *SalesReport, name string) (ProductSales, bool) {
	for _, s := range report.Sales {
		if s.Name == name {
			return s, true
		}
	}
	return ProductSales{}, false
}

func findReturns(report *SalesReport, name string) (ProductReturns, bool) {
	for _, r := range report.Returns {
		if r.Name == name {
			return r, true
		}
	}
	return ProductReturns{}, false
}

func TestSalesReportAggregatesShippedOrders(t *testing.T) {
	keyboard := &catalog.Product{ID: 1, Name: "Keyboard", Price: 49.90}
	repo := &fakeOrders{orders: []orderdomain.Order{
		{
			ID: 1, Status: orderdomain.StatusShipped, OrderDate: day(1),
			Items: []orderdomain.OrderItem{
				{ProductID: 1, Quantity: 1, PriceAtOrder: 9.99, Product: keyboard},
			},
		},
		{
			ID: 2, Status: orderdomain.StatusShipped, OrderDate: day(2),
			Items: []orderdomain.OrderItem{
				{ProductID: 1, Quantity: 1, PriceAtOrder: 9.99, Product: keyboard},
			},
		},
	}}
	handler := NewSalesReportHandler(repo)

	report, err := handler.Handle(context.Background(), SalesReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalOrders)
	assert.InDelta(t, 19.98, report.TotalRevenue, 1e-9)

	require.Len(t, report.Sales, 1)
	sales, ok := findSales(report, "Keyboard")
	require.True(t, ok)
	assert.Equal(t, 2, sales.SoldQuantity)
	assert.InDelta(t, 19.98, sales.TotalRevenue, 1e-9)
	assert.Empty(t, report.Returns)
}

func TestSalesReportSerializesAsLists(t *testing.T) {
	keyboard := &catalog.Product{ID: 1, Name: "Keyboard", Price: 49.90}
	repo := &fakeOrders{orders: []orderdomain.Order{
		{
			ID: 1, Status: orderdomain.StatusShipped, OrderDate: day(1),
			Items: []orderdomain.OrderItem{
				{ProductID: 1, Quantity: 2, PriceAtOrder: 9.99, Product: keyboard},
			},
		},
	}}
	handler := NewSalesReportHandler(repo)

	report, err := handler.Handle(context.Background(), SalesReportQuery{})
	require.NoError(t, err)

	payload, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded struct {
		Sales []struct {
			Name         string  `json:"name"`
			SoldQuantity int     `json:"soldQuantity"`
			TotalRevenue float64 `json:"totalRevenue"`
		} `json:"sales"`
		Returns []struct {
			Name string `json:"name"`
		} `json:"returns"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))

	require.Len(t, decoded.Sales, 1)
	assert.Equal(t, "Keyboard", decoded.Sales[0].Name)
	assert.Equal(t, 2, decoded.Sales[0].SoldQuantity)
	assert.InDelta(t, 19.98, decoded.Sales[0].TotalRevenue, 1e-9)
	assert.NotNil(t, decoded.Returns)
}

func TestSalesReportSeparatesReturns(t *testing.T) {
	keyboard := &catalog.Product{ID: 1, Name: "Keyboard", Price: 49.90}
	repo := &fakeOrders{orders: []orderdomain.Order{
		{
			ID: 1, Status: orderdomain.StatusShipped, OrderDate: day(1),
			Items: []orderdomain.OrderItem{{ProductID: 1, Quantity: 3, PriceAtOrder: 10, Product: keyboard}},
		},
		{
			ID: 2, Status: orderdomain.StatusCancelled, OrderDate: day(2),
			Items: []orderdomain.OrderItem{{ProductID: 1, Quantity: 2, PriceAtOrder: 10, Product: keyboard}},
		},
	}}
	handler := NewSalesReportHandler(repo)

	report, err := handler.Handle(context.Background(), SalesReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalOrders)
	// Cancelled orders never contribute to revenue.
	assert.InDelta(t, 30, report.TotalRevenue, 1e-9)

	returns, ok := findReturns(report, "Keyboard")
	require.True(t, ok)
	assert.Equal(t, 2, returns.ReturnedQuantity)
	assert.InDelta(t, 20, returns.TotalRefund, 1e-9)
}

func TestSalesReportPricePrecedence(t *testing.T) {
	current := &catalog.Product{ID: 1, Name: "Keyboard", Price: 25}
	repo := &fakeOrders{orders: []orderdomain.Order{
		{
			ID: 1, Status: orderdomain.StatusShipped, OrderDate: day(1),
			Items: []orderdomain.OrderItem{
				// Snapshot wins over the current price.
				{ProductID: 1, Quantity: 1, PriceAtOrder: 10, Product: current},
				// Legacy row without a snapshot falls back to the current price.
				{ProductID: 1, Quantity: 1, PriceAtOrder: 0, Product: current},
				// No snapshot, product deleted: counts as zero revenue.
				{ProductID: 2, Quantity: 1, PriceAtOrder: 0, Product: nil},
			},
		},
	}}
	handler := NewSalesReportHandler(repo)

	report, err := handler.Handle(context.Background(), SalesReportQuery{})
	require.NoError(t, err)

	assert.InDelta(t, 35, report.TotalRevenue, 1e-9)
	orphan, ok := findSales(report, "Product #2")
	require.True(t, ok)
	assert.Equal(t, 1, orphan.SoldQuantity)
	assert.InDelta(t, 0, orphan.TotalRevenue, 1e-9)
}

func TestSalesReportFiltersByOrderDate(t *testing.T) {
	keyboard := &catalog.Product{ID: 1, Name: "Keyboard"}
	repo := &fakeOrders{orders: []orderdomain.Order{
		{
			ID: 1, Status: orderdomain.StatusShipped, OrderDate: day(1),
			Items: []orderdomain.OrderItem{{ProductID: 1, Quantity: 1, PriceAtOrder: 10, Product: keyboard}},
		},
		{
			ID: 2, Status: orderdomain.StatusShipped, OrderDate: day(10),
			Items: []orderdomain.OrderItem{{ProductID: 1, Quantity: 1, PriceAtOrder: 10, Product: keyboard}},
		},
	}}
	handler := NewSalesReportHandler(repo)

	start := day(5)
	report, err := handler.Handle(context.Background(), SalesReportQuery{Start: &start})
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalOrders)
	assert.InDelta(t, 10, report.TotalRevenue, 1e-9)
	assert.Equal(t, &start, report.StartDate)
}

func TestSalesReportEmptyRange(t *testing.T) {
	handler := NewSalesReportHandler(&fakeOrders{})

	report, err := handler.Handle(context.Background(), SalesReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalOrders)
	assert.Zero(t, report.TotalRevenue)
	assert.NotNil(t, report.Sales)
	assert.NotNil(t, report.Returns)
}

type fakeProducts struct {
	products []catalog.Product
}

func (r *fakeProducts) Create(ctx context.Context, product *catalog.Product) error { return nil }
func (r *fakeProducts) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	return nil, nil
}
func (r *fakeProducts) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	return r.products, nil
}
func (r *fakeProducts) Update(ctx context.Context, product *catalog.Product) error { return nil }
func (r *fakeProducts) Delete(ctx context.Context, id uint) error                  { return nil }
func (r *fakeProducts) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return 0, nil
}

func (r *fakeProducts) FindLowStock(ctx context.Context, threshold int) ([]catalog.Product, error) {
	var out []catalog.Product
	for _, p := range r.products {
		if p.Quantity <= threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestLowStockDefaultThreshold(t *testing.T) {
	repo := &fakeProducts{products: []catalog.Product{
		{ID: 1, Name: "Keyboard", Quantity: 3},
		{ID: 2, Name: "Mouse", Quantity: 5},
		{ID: 3, Name: "Monitor", Quantity: 12},
	}}
	handler := NewLowStockHandler(repo)

	products, err := handler.Handle(context.Background(), LowStockQuery{})
	require.NoError(t, err)
	require.Len(t, products, 2)
}

func TestLowStockCustomThreshold(t *testing.T) {
	repo := &fakeProducts{products: []catalog.Product{
		{ID: 1, Name: "Keyboard", Quantity: 3},
		{ID: 2, Name: "Monitor", Quantity: 12},
	}}
	handler := NewLowStockHandler(repo)

	products, err := handler.Handle(context.Background(), LowStockQuery{Threshold: 20})
	require.NoError(t, err)
	require.Len(t, products, 2)
}
