package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/httpx"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/validation"
)

func TestError_WritesStandardBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/stocks/x", nil)

	httpx.Error(rec, req, logger.NewNopLogger(), apperror.NewNotFoundError("Estoque x não encontrado."))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "NOT_FOUND", body.Category)
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestDecode_RejectsMalformedAndUnknownFields(t *testing.T) {
	var dst domain.OrderStatusRequest

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader("{"))
	assert.IsType(t, &apperror.ValidationError{}, httpx.Decode(req, nil, &dst))

	req = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"ordered","extra":1}`))
	assert.IsType(t, &apperror.ValidationError{}, httpx.Decode(req, nil, &dst))
}

func TestDecode_Validates(t *testing.T) {
	var dst domain.OrderStatusRequest
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"delivered"}`))

	err := httpx.Decode(req, validation.New(), &dst)

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "status")
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/parts?page=2&limit=x", nil)

	page, err := httpx.QueryInt(r, "page")
	assert.NoError(t, err)
	assert.Equal(t, 2, page)

	_, err = httpx.QueryInt(r, "limit")
	assert.Error(t, err)

	missing, err := httpx.QueryInt(r, "offset")
	assert.NoError(t, err)
	assert.Zero(t, missing)
}

func TestQueryDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/reports/orders?from=2025-01-01&to=2025-01-31&bad=31/01/2025", nil)

	from, err := httpx.QueryDate(r, "from", false)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), from)

	to, err := httpx.QueryDate(r, "to", true)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), to)

	_, err = httpx.QueryDate(r, "bad", false)
	assert.Error(t, err)
}
