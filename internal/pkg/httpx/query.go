package httpx

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperror "partstock/internal/errors"
)

// QueryInt lê um parâmetro inteiro não negativo da query string (0 se ausente).
func QueryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, apperror.NewValidationError(fmt.Sprintf("Parâmetro '%s' deve ser um inteiro não negativo.", key))
	}
	return v, nil
}

// QueryDate lê uma data em YYYY-MM-DD ou RFC3339.
// Com exclusiveEnd, uma data sem hora vira o início do dia seguinte, para que
// o intervalo [from, to) inclua o dia inteiro informado em "to".
func QueryDate(r *http.Request, key string, exclusiveEnd bool) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, apperror.NewValidationError(fmt.Sprintf("Parâmetro '%s' deve estar no formato YYYY-MM-DD ou RFC3339.", key))
	}
	if exclusiveEnd {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}
