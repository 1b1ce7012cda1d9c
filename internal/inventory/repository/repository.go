package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
	"github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/pkg/apperror"
)

// GormLedger implements domain.Ledger on a *gorm.DB, which may be a
// transaction handle. Stock-affecting callers must hand it the transaction
// from a scope; the row lock in ProductForUpdate is what serializes
// concurrent movements against the same product.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) ProductForUpdate(ctx context.Context, productID uint) (*catalog.Product, error) {
	var product catalog.Product
	err := l.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Product with id=%d not found", productID)
		}
		return nil, err
	}
	return &product, nil
}

func (l *GormLedger) SetProductQuantity(ctx context.Context, productID uint, quantity int) error {
	return l.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ?", productID).
		Update("quantity", quantity).Error
}

func (l *GormLedger) Append(ctx context.Context, movement *domain.Movement) error {
	return l.db.WithContext(ctx).Create(movement).Error
}

func (l *GormLedger) DeleteByProduct(ctx context.Context, productID uint) error {
	return l.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&domain.Movement{}).Error
}

// GormMovementRepository implements read access to the movement ledger
type GormMovementRepository struct {
	db *gorm.DB
}

func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

func (r *GormMovementRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Movement{})
}

func (r *GormMovementRepository) FindAll(ctx context.Context) ([]domain.Movement, error) {
	var movements []domain.Movement
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("date DESC").
		Find(&movements).Error
	return movements, err
}

func (r *GormMovementRepository) FindByProductID(ctx context.Context, productID uint) ([]domain.Movement, error) {
	var movements []domain.Movement
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Preload("Product").
		Order("date DESC").
		Find(&movements).Error
	return movements, err
}

// GormTransactionScope runs ledger work inside one database transaction
type GormTransactionScope struct {
	db *gorm.DB
}

func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

func (s *GormTransactionScope) Execute(ctx context.Context, fn func(ledger domain.Ledger) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewTracingLedger(tx))
	})
}
