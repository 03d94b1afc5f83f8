package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/validation"
)

func TestStruct_Valid(t *testing.T) {
	v := validation.New()

	err := v.Struct(domain.StockAdjustmentRequest{
		Mode:   domain.AdjustmentModeRemove,
		Amount: 3,
		Type:   domain.TransactionTypeSale,
	})
	assert.NoError(t, err)
}

func TestStruct_UsesJSONFieldNames(t *testing.T) {
	v := validation.New()

	err := v.Struct(domain.StockAdjustmentRequest{Mode: "multiply", Amount: -1, Type: domain.TransactionTypeSale})

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "'mode'")
	assert.Contains(t, err.Error(), "'amount'")
}

func TestStruct_DivesIntoOrderItems(t *testing.T) {
	v := validation.New()

	err := v.Struct(domain.OrderCreateRequest{
		Supplier: "Fornecedor A",
		Items:    []domain.OrderItemCreateRequest{{StockID: "not-a-uuid", QuantityOrdered: 0}},
	})

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "items[0].stock_id")
	assert.Contains(t, err.Error(), "items[0].quantity_ordered")
}

func TestStruct_EmptyOrderRejected(t *testing.T) {
	v := validation.New()

	err := v.Struct(domain.OrderCreateRequest{Supplier: "Fornecedor A"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'items'")
}
