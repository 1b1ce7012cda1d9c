package domain

import "github.com/storetrack/storetrack/pkg/apperror"

// Status is the order lifecycle state
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusCancelled Status = "Cancelled"
)

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusShipped, StatusCancelled:
		return Status(raw), nil
	}
	return "", apperror.Validation("Invalid order status")
}

// Effect is the reconciliation work a status transition requires.
type Effect int

const (
	// EffectNoop: same status, nothing is written.
	EffectNoop Effect = iota
	// EffectNone: status is written, stock is untouched.
	EffectNone
	// EffectShip: one OUT movement per order line.
	EffectShip
	// EffectRestock: one IN movement per order line.
	EffectRestock
)

// Plan maps a (from, to) status pair to its effect. Pairs not in the table
// are rejected: nothing leaves Cancelled, and a shipped order cannot go back
// to Pending.
func Plan(from, to Status) (Effect, error) {
	if from == to {
		return EffectNoop, nil
	}
	switch from {
	case StatusPending:
		switch to {
		case StatusShipped:
			return EffectShip, nil
		case StatusCancelled:
			// Nothing was reserved for a pending order, so nothing to return.
			return EffectNone, nil
		}
	case StatusShipped:
		if to == StatusCancelled {
			return EffectRestock, nil
		}
	case StatusCancelled:
	}
	return EffectNoop, apperror.Validation("Order cannot move from %s to %s", from, to)
}
