package query

import (
	"context"
	"fmt"
	"sort"
	"time"

	orderdomain "github.com/storetrack/storetrack/internal/order/domain"
)

// SalesReportQuery represents the query for a sales report over a date range
type SalesReportQuery struct {
	Start *time.Time
	End   *time.Time
}

// ProductSales aggregates shipped units of one product
type ProductSales struct {
	Name         string  `json:"name"`
	SoldQuantity int     `json:"soldQuantity"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ProductReturns aggregates cancelled units of one product
type ProductReturns struct {
	Name             string  `json:"name"`
	ReturnedQuantity int     `json:"returnedQuantity"`
	TotalRefund      float64 `json:"totalRefund"`
}

// SalesReport is the aggregated report payload. Sales and Returns are flat
// lists, one entry per product name, sorted by name.
type SalesReport struct {
	StartDate    *time.Time       `json:"startDate"`
	EndDate      *time.Time       `json:"endDate"`
	TotalRevenue float64          `json:"totalRevenue"`
	TotalOrders  int              `json:"totalOrders"`
	Sales        []ProductSales   `json:"sales"`
	Returns      []ProductReturns `json:"returns"`
}

// SalesReportHandler folds shipped and cancelled orders into per-product
// sales and returns. Only orders whose order date falls inside the supplied
// range are counted.
type SalesReportHandler struct {
	orders orderdomain.OrderRepository
}

// NewSalesReportHandler creates a new sales report handler
func NewSalesReportHandler(orders orderdomain.OrderRepository) *SalesReportHandler {
	return &SalesReportHandler{orders: orders}
}

// Handle executes the sales report query
func (h *SalesReportHandler) Handle(ctx context.Context, q SalesReportQuery) (*SalesReport, error) {
	orders, err := h.orders.FindByStatuses(ctx,
		[]orderdomain.Status{orderdomain.StatusShipped, orderdomain.StatusCancelled},
		q.Start, q.End)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		StartDate: q.Start,
		EndDate:   q.End,
		Sales:     []ProductSales{},
		Returns:   []ProductReturns{},
	}

	sales := make(map[string]*ProductSales)
	returns := make(map[string]*ProductReturns)

	for _, order := range orders {
		report.TotalOrders++
		for _, item := range order.Items {
			name := lineName(item)
			amount := linePrice(item) * float64(item.Quantity)

			switch order.Status {
			case orderdomain.StatusShipped:
				entry, ok := sales[name]
				if !ok {
					entry = &ProductSales{Name: name}
					sales[name] = entry
				}
				entry.SoldQuantity += item.Quantity
				entry.TotalRevenue += amount
				report.TotalRevenue += amount
			case orderdomain.StatusCancelled:
				entry, ok := returns[name]
				if !ok {
					entry = &ProductReturns{Name: name}
					returns[name] = entry
				}
				entry.ReturnedQuantity += item.Quantity
				entry.TotalRefund += amount
			}
		}
	}

	for _, entry := range sales {
		report.Sales = append(report.Sales, *entry)
	}
	for _, entry := range returns {
		report.Returns = append(report.Returns, *entry)
	}
	sort.Slice(report.Sales, func(i, j int) bool { return report.Sales[i].Name < report.Sales[j].Name })
	sort.Slice(report.Returns, func(i, j int) bool { return report.Returns[i].Name < report.Returns[j].Name })

	return report, nil
}

// linePrice prefers the price captured at order time, falling back to the
// current catalog price for legacy rows written before snapshots existed.
func linePrice(item orderdomain.OrderItem) float64 {
	if item.PriceAtOrder > 0 {
		return item.PriceAtOrder
	}
	if item.Product != nil {
		return item.Product.Price
	}
	return 0
}

func lineName(item orderdomain.OrderItem) string {
	if item.Product != nil {
		return item.Product.Name
	}
	// The product was deleted after the order; its rows remain.
	return fmt.Sprintf("Product #%d", item.ProductID)
}
