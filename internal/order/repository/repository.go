package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
	inventoryrepo "github.com/storetrack/storetrack/internal/inventory/repository"
	"github.com/storetrack/storetrack/internal/order/domain"
	"github.com/storetrack/storetrack/internal/order/usecase/command"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// GormOrderRepository implements domain.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// AutoMigrate creates the order tables
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Omit("Items").Create(order).Error
}

func (r *GormOrderRepository) CreateItems(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *GormOrderRepository) UpdateTotal(ctx context.Context, orderID uint, total float64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", orderID).
		Update("total_amount", total).Error
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, orderID uint, status domain.Status) error {
	return r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Order with id=%d not found", id)
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Order with id=%d not found", id)
		}
		return nil, err
	}
	// Items are loaded separately; FOR UPDATE cannot span the preload join.
	err = r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Find(&order.Items).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var orders []domain.Order
	q := r.db.WithContext(ctx).Preload("Items.Product")
	if filter.CustomerName != "" {
		q = q.Where("customer_name ILIKE ?", "%"+filter.CustomerName+"%")
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = dateRange(q, filter.Start, filter.End)
	err := q.Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *GormOrderRepository) FindByStatuses(ctx context.Context, statuses []domain.Status, start, end *time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	q := r.db.WithContext(ctx).
		Preload("Items.Product").
		Where("status IN ?", statuses)
	q = dateRange(q, start, end)
	err := q.Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func dateRange(q *gorm.DB, start, end *time.Time) *gorm.DB {
	if start != nil {
		q = q.Where("order_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("order_date <= ?", *end)
	}
	return q
}

// txRepositories is the per-transaction repository set handed to order
// commands. The order repository and the ledger share one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (t *txRepositories) Orders() domain.OrderRepository {
	return NewGormOrderRepository(t.tx)
}

func (t *txRepositories) Ledger() inventory.Ledger {
	return inventoryrepo.NewTracingLedger(t.tx)
}

// GormTransactionScope implements command.TransactionScope on a *gorm.DB
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new transaction scope for order commands
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos command.TxRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositories{tx: tx})
	})
}
