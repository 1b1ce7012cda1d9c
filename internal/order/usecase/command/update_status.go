package command

import (
	"context"
	"fmt"

	inventory "github.com/storetrack/storetrack/internal/inventory/domain"
	"github.com/storetrack/storetrack/internal/order/domain"
	"github.com/storetrack/storetrack/kafka"
	"github.com/storetrack/storetrack/pkg/logger"
)

// EventPublisher publishes order events after commit.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event kafka.OrderStatusChangedEvent) error
}

// ReportCache invalidates cached sales reports after stock-affecting changes.
type ReportCache interface {
	InvalidateSalesReports(ctx context.Context) error
}

// UpdateStatusCommand represents the command to change an order's status
type UpdateStatusCommand struct {
	OrderID uint
	Status  string
}

// UpdateStatusHandler drives the order lifecycle. The status write and every
// per-line stock movement share one transaction: a failing line rolls the
// whole transition back and the order keeps its previous status.
type UpdateStatusHandler struct {
	scope     TransactionScope
	repo      domain.OrderRepository
	publisher EventPublisher
	cache     ReportCache
}

// NewUpdateStatusHandler creates a new update status handler
func NewUpdateStatusHandler(
	scope TransactionScope,
	repo domain.OrderRepository,
	publisher EventPublisher,
	cache ReportCache,
) *UpdateStatusHandler {
	return &UpdateStatusHandler{scope: scope, repo: repo, publisher: publisher, cache: cache}
}

// Handle executes the update status command
func (h *UpdateStatusHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) (*domain.Order, error) {
	target, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	var (
		oldStatus domain.Status
		changed   bool
	)

	err = h.scope.Execute(ctx, func(repos TxRepositories) error {
		order, err := repos.Orders().FindByIDForUpdate(ctx, cmd.OrderID)
		if err != nil {
			return err
		}
		oldStatus = order.Status

		effect, err := domain.Plan(order.Status, target)
		if err != nil {
			return err
		}
		if effect == domain.EffectNoop {
			return nil
		}

		switch effect {
		case domain.EffectShip:
			if err := h.moveLines(ctx, repos.Ledger(), order, inventory.DirectionOut,
				fmt.Sprintf("Shipped in Order #%d", order.ID)); err != nil {
				return err
			}
		case domain.EffectRestock:
			if err := h.moveLines(ctx, repos.Ledger(), order, inventory.DirectionIn,
				fmt.Sprintf("Returned from cancelled Order #%d", order.ID)); err != nil {
				return err
			}
		}

		if err := repos.Orders().UpdateStatus(ctx, order.ID, target); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := h.repo.FindByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if changed {
		h.afterCommit(ctx, order, oldStatus)
	}
	return order, nil
}

func (h *UpdateStatusHandler) moveLines(ctx context.Context, ledger inventory.Ledger, order *domain.Order, direction inventory.Direction, note string) error {
	for _, item := range order.Items {
		_, _, err := inventory.Reconcile(ctx, ledger, inventory.MovementRequest{
			ProductID:          item.ProductID,
			Type:               direction,
			Quantity:           item.Quantity,
			Note:               note,
			SourceDocumentType: inventory.SourceOrder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (h *UpdateStatusHandler) afterCommit(ctx context.Context, order *domain.Order, oldStatus domain.Status) {
	if h.cache != nil {
		if err := h.cache.InvalidateSalesReports(ctx); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to invalidate report cache")
		}
	}
	if h.publisher == nil {
		return
	}
	event := kafka.OrderStatusChangedEvent{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		OldStatus:    string(oldStatus),
		NewStatus:    string(order.Status),
		TotalAmount:  order.TotalAmount,
	}
	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		// Events are best effort; the transition is already committed.
		logger.Warn(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order event")
	}
}
