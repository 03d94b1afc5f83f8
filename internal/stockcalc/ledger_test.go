package stockcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/stockcalc"
)

func TestReplay_ReproducesLiveQuantity(t *testing.T) {
	steps := []struct {
		mode   domain.AdjustmentMode
		amount int
	}{
		{domain.AdjustmentModeAdd, 10},
		{domain.AdjustmentModeRemove, 3},
		{domain.AdjustmentModeSet, 20},
		{domain.AdjustmentModeRemove, 50},
		{domain.AdjustmentModeAdd, 0},
		{domain.AdjustmentModeAdd, 4},
	}

	live := 2
	var ledger []domain.InventoryTransaction
	for _, s := range steps {
		adj := stockcalc.Adjust(live, s.mode, s.amount)
		ledger = append(ledger, domain.InventoryTransaction{
			Type:           domain.TransactionTypeAdjustment,
			QuantityBefore: adj.Before,
			QuantityChange: adj.Delta,
			QuantityAfter:  adj.After,
		})
		live = adj.After
	}

	replayed, err := stockcalc.Replay(ledger)
	require.NoError(t, err)
	assert.Equal(t, live, replayed)
	assert.Equal(t, 4, replayed)
}

func TestReplay_BrokenChain(t *testing.T) {
	ledger := []domain.InventoryTransaction{
		{ID: "t1", QuantityBefore: 0, QuantityChange: 5, QuantityAfter: 5},
		{ID: "t2", QuantityBefore: 7, QuantityChange: 1, QuantityAfter: 8},
	}

	_, err := stockcalc.Replay(ledger)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Contains(t, err.Error(), "t2")
}

func TestReplay_InconsistentEntry(t *testing.T) {
	ledger := []domain.InventoryTransaction{
		{ID: "t1", QuantityBefore: 0, QuantityChange: 5, QuantityAfter: 4},
	}

	_, err := stockcalc.Replay(ledger)
	assert.Error(t, err)
}

func TestReplay_Empty(t *testing.T) {
	q, err := stockcalc.Replay(nil)
	assert.NoError(t, err)
	assert.Zero(t, q)
}
