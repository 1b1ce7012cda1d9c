package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	catalog "github.com/storetrack/storetrack/internal/catalog/domain"
	"github.com/storetrack/storetrack/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-ledger")

// TracingLedger wraps GormLedger with tracing on the reconciliation hot path
type TracingLedger struct {
	*GormLedger
}

// NewTracingLedger creates a ledger with tracing
func NewTracingLedger(db *gorm.DB) *TracingLedger {
	return &TracingLedger{GormLedger: NewGormLedger(db)}
}

// ProductForUpdate with tracing
func (l *TracingLedger) ProductForUpdate(ctx context.Context, productID uint) (*catalog.Product, error) {
	ctx, span := tracer.Start(ctx, "ledger.ProductForUpdate",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	product, err := l.GormLedger.ProductForUpdate(ctx, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.quantity", product.Quantity))
	return product, nil
}

// SetProductQuantity with tracing
func (l *TracingLedger) SetProductQuantity(ctx context.Context, productID uint, quantity int) error {
	ctx, span := tracer.Start(ctx, "ledger.SetProductQuantity",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
			attribute.Int("product.quantity", quantity),
		),
	)
	defer span.End()

	if err := l.GormLedger.SetProductQuantity(ctx, productID, quantity); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Append with tracing
func (l *TracingLedger) Append(ctx context.Context, movement *domain.Movement) error {
	ctx, span := tracer.Start(ctx, "ledger.Append",
		trace.WithAttributes(
			attribute.Int("movement.product_id", int(movement.ProductID)),
			attribute.String("movement.type", string(movement.Type)),
			attribute.Int("movement.quantity", movement.Quantity),
		),
	)
	defer span.End()

	if err := l.GormLedger.Append(ctx, movement); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("movement.id", int(movement.ID)))
	return nil
}
