package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storetrack/storetrack/pkg/apperror"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"Pending", "Shipped", "Cancelled"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, Status(raw), status)
	}

	for _, raw := range []string{"", "pending", "Completed", "SHIPPED", "Unknown"} {
		_, err := ParseStatus(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.Equal(t, 400, apperror.StatusCode(err))
	}
}

func TestPlanCoversEveryStatusPair(t *testing.T) {
	statuses := []Status{StatusPending, StatusShipped, StatusCancelled}

	allowed := map[[2]Status]Effect{
		{StatusPending, StatusShipped}:     EffectShip,
		{StatusPending, StatusCancelled}:   EffectNone,
		{StatusShipped, StatusCancelled}:   EffectRestock,
		{StatusPending, StatusPending}:     EffectNoop,
		{StatusShipped, StatusShipped}:     EffectNoop,
		{StatusCancelled, StatusCancelled}: EffectNoop,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			effect, err := Plan(from, to)
			if want, ok := allowed[[2]Status{from, to}]; ok {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, want, effect, "%s -> %s", from, to)
			} else {
				require.Error(t, err, "%s -> %s", from, to)
				assert.Equal(t, 400, apperror.StatusCode(err))
			}
		}
	}
}

func TestPlanRejectsLeavingCancelled(t *testing.T) {
	for _, to := range []Status{StatusPending, StatusShipped} {
		_, err := Plan(StatusCancelled, to)
		require.Error(t, err)
	}
}

func TestPlanRejectsShippedBackToPending(t *testing.T) {
	_, err := Plan(StatusShipped, StatusPending)
	require.Error(t, err)
}
