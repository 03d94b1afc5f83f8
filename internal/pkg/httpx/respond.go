// Package httpx reúne as respostas HTTP padronizadas da API.
package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/logger"
)

// maxBodyBytes limita o tamanho dos payloads aceitos.
const maxBodyBytes = 1 << 20

// Validator é o contrato mínimo usado para validar payloads decodificados.
type Validator interface {
	Struct(s interface{}) error
}

// JSON envia data serializado com o status informado.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent envia 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error traduz o erro para {code, category, message}.
// Erros 5xx são registrados com a causa; 4xx apenas em debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	}

	JSON(w, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// Decode lê o corpo JSON em dst e, se v não for nil, valida as tags `validate`.
func Decode(r *http.Request, v Validator, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	if v == nil {
		return nil
	}
	return v.Struct(dst)
}
