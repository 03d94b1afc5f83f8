package stockcalc

import (
	"fmt"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
)

// Adjustment é o resultado de um ajuste de quantidade.
// Before/After/Delta viram quantity_before/quantity_after/quantity_change do lançamento.
type Adjustment struct {
	Before int
	After  int
	Delta  int
}

// ValidateAdjustment rejeita modos desconhecidos e quantidades negativas.
func ValidateAdjustment(mode domain.AdjustmentMode, amount int) error {
	if !mode.IsValid() {
		return apperror.NewValidationError(fmt.Sprintf("Modo de ajuste desconhecido: '%s'.", mode))
	}
	if amount < 0 {
		return apperror.NewValidationError("A quantidade do ajuste não pode ser negativa.")
	}
	return nil
}

// Adjust calcula a nova quantidade a partir da atual.
// remove nunca deixa o estoque negativo: o excedente é descartado e Delta
// reflete apenas o que foi efetivamente retirado.
// Pressupõe entrada validada por ValidateAdjustment.
func Adjust(current int, mode domain.AdjustmentMode, amount int) Adjustment {
	var after int

	switch mode {
	case domain.AdjustmentModeSet:
		after = amount
	case domain.AdjustmentModeAdd:
		after = current + amount
	case domain.AdjustmentModeRemove:
		after = current - amount
		if after < 0 {
			after = 0
		}
	default:
		after = current
	}

	return Adjustment{Before: current, After: after, Delta: after - current}
}

// Clamped indica que um remove pediu mais do que havia disponível.
func Clamped(current int, mode domain.AdjustmentMode, amount int) bool {
	return mode == domain.AdjustmentModeRemove && amount > current
}
