package stockcalc

import (
	"fmt"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
)

// Replay reconstrói a quantidade a partir do razão, em ordem cronológica.
// Parte do quantity_before do primeiro lançamento e aplica cada quantity_change.
// Um lançamento cujo before não coincide com o saldo corrente, ou cujo after
// não é before+change, quebra a cadeia e gera erro.
func Replay(transactions []domain.InventoryTransaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	running := transactions[0].QuantityBefore
	for i, tx := range transactions {
		if tx.QuantityBefore != running {
			return running, apperror.NewConflictError(fmt.Sprintf(
				"Lançamento %d (%s) começa em %d, mas o saldo reconstruído é %d.", i, tx.ID, tx.QuantityBefore, running))
		}
		if tx.QuantityBefore+tx.QuantityChange != tx.QuantityAfter {
			return running, apperror.NewConflictError(fmt.Sprintf(
				"Lançamento %d (%s) é inconsistente: %d %+d != %d.", i, tx.ID, tx.QuantityBefore, tx.QuantityChange, tx.QuantityAfter))
		}
		running += tx.QuantityChange
	}
	return running, nil
}
