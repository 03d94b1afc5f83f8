package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"partstock/internal/domain"
)

func TestTransactionType_AllowsMode(t *testing.T) {
	set, add, remove := domain.AdjustmentModeSet, domain.AdjustmentModeAdd, domain.AdjustmentModeRemove

	cases := []struct {
		typ     domain.TransactionType
		allowed []domain.AdjustmentMode
	}{
		{domain.TransactionTypePurchase, []domain.AdjustmentMode{add}},
		{domain.TransactionTypeProduction, []domain.AdjustmentMode{add}},
		{domain.TransactionTypeReturn, []domain.AdjustmentMode{add}},
		{domain.TransactionTypeSale, []domain.AdjustmentMode{remove}},
		{domain.TransactionTypeDamage, []domain.AdjustmentMode{remove}},
		{domain.TransactionTypeAdjustment, []domain.AdjustmentMode{set, add, remove}},
		{"gift", nil},
	}

	for _, tc := range cases {
		t.Run(string(tc.typ), func(t *testing.T) {
			for _, mode := range []domain.AdjustmentMode{set, add, remove} {
				assert.Equal(t, contains(tc.allowed, mode), tc.typ.AllowsMode(mode), "modo %s", mode)
			}
			assert.False(t, tc.typ.AllowsMode("multiply"))
		})
	}
}

func contains(modes []domain.AdjustmentMode, mode domain.AdjustmentMode) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}
