package command

import (
	"context"

	"github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/kafka"
	"github.com/storetrack/storetrack/pkg/logger"
)

// EventPublisher publishes movement events after commit.
type EventPublisher interface {
	PublishMovementApplied(ctx context.Context, event kafka.MovementAppliedEvent) error
}

// ApplyMovementCommand represents a direct inventory adjustment request
type ApplyMovementCommand struct {
	ProductID uint
	Type      string
	Quantity  int
	Note      string
}

// ApplyMovementHandler handles direct inventory adjustments
type ApplyMovementHandler struct {
	scope     TransactionScope
	publisher EventPublisher
}

// NewApplyMovementHandler creates a new apply movement handler
func NewApplyMovementHandler(scope TransactionScope, publisher EventPublisher) *ApplyMovementHandler {
	return &ApplyMovementHandler{scope: scope, publisher: publisher}
}

// Handle executes the apply movement command
func (h *ApplyMovementHandler) Handle(ctx context.Context, cmd ApplyMovementCommand) (*domain.Movement, error) {
	var movement *domain.Movement

	err := h.scope.Execute(ctx, func(ledger domain.Ledger) error {
		_, m, err := domain.Reconcile(ctx, ledger, domain.MovementRequest{
			ProductID:          cmd.ProductID,
			Type:               domain.Direction(cmd.Type),
			Quantity:           cmd.Quantity,
			Note:               cmd.Note,
			SourceDocumentType: domain.SourceManualAdjustment,
		})
		if err != nil {
			return err
		}
		movement = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.publish(ctx, movement)
	return movement, nil
}

func (h *ApplyMovementHandler) publish(ctx context.Context, m *domain.Movement) {
	if h.publisher == nil {
		return
	}
	event := kafka.MovementAppliedEvent{
		MovementID: m.ID,
		ProductID:  m.ProductID,
		Type:       string(m.Type),
		Quantity:   m.Quantity,
		Note:       m.Note,
	}
	if err := h.publisher.PublishMovementApplied(ctx, event); err != nil {
		// Events are best effort; the movement is already committed.
		logger.Warn(ctx).Err(err).Uint("movement_id", m.ID).Msg("Failed to publish movement event")
	}
}
