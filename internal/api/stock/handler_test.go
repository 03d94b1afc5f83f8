package stock_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partstock/internal/api/stock"
	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/middleware"
	"partstock/internal/pkg/validation"
)

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) CreateStock(ctx domain.Context, req domain.StockCreateRequest, createdBy string) (domain.PartColorStock, error) {
	args := m.Called(ctx, req, createdBy)
	return args.Get(0).(domain.PartColorStock), args.Error(1)
}

func (m *MockStockService) GetStockByID(ctx domain.Context, id string) (domain.PartColorStock, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.PartColorStock), args.Error(1)
}

func (m *MockStockService) ListStocks(ctx domain.Context, filter domain.StockFilter) ([]domain.PartColorStock, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.PartColorStock), args.Error(1)
}

func (m *MockStockService) UpdateStock(ctx domain.Context, id string, req domain.StockUpdateRequest) (domain.PartColorStock, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(domain.PartColorStock), args.Error(1)
}

func (m *MockStockService) AdjustStock(ctx domain.Context, req domain.StockAdjustmentRequest) (domain.StockAdjustmentResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.StockAdjustmentResult), args.Error(1)
}

func (m *MockStockService) ListTransactions(ctx domain.Context, stockID string) ([]domain.InventoryTransaction, error) {
	args := m.Called(ctx, stockID)
	return args.Get(0).([]domain.InventoryTransaction), args.Error(1)
}

func (m *MockStockService) VerifyLedger(ctx domain.Context, stockID string) (domain.LedgerVerification, error) {
	args := m.Called(ctx, stockID)
	return args.Get(0).(domain.LedgerVerification), args.Error(1)
}

const stockID = "5f0c6f7e-4a8b-4d5e-9f1a-2b3c4d5e6f70"

func newRouter(svc *MockStockService) http.Handler {
	h := stock.NewHandler(svc, validation.New(), logger.NewNopLogger())
	r := chi.NewRouter()
	r.Get("/stocks", h.ListStocksHandler)
	r.Get("/stocks/{id}", h.GetStockByIDHandler)
	r.Post("/stocks/{id}/adjust", h.AdjustStockHandler)
	r.Get("/stocks/{id}/ledger/verify", h.VerifyLedgerHandler)
	return r
}

func TestAdjustStockHandler_FillsStockAndUserFromRequest(t *testing.T) {
	svc := new(MockStockService)
	expected := domain.StockAdjustmentRequest{
		StockID:   stockID,
		Mode:      domain.AdjustmentModeRemove,
		Amount:    5,
		Type:      domain.TransactionTypeSale,
		CreatedBy: "user-1",
	}
	svc.On("AdjustStock", mock.Anything, expected).Return(domain.StockAdjustmentResult{
		Stock:       domain.PartColorStock{ID: stockID, Quantity: 5},
		Transaction: domain.InventoryTransaction{QuantityBefore: 10, QuantityChange: -5, QuantityAfter: 5},
	}, nil)

	body := `{"mode":"remove","amount":5,"type":"sale"}`
	req := httptest.NewRequest(http.MethodPost, "/stocks/"+stockID+"/adjust", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "user-1", Role: domain.RoleAdmin}))
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity_after":5`)
	svc.AssertExpectations(t)
}

func TestAdjustStockHandler_RejectsUnknownMode(t *testing.T) {
	svc := new(MockStockService)

	body := `{"mode":"multiply","amount":5,"type":"sale"}`
	req := httptest.NewRequest(http.MethodPost, "/stocks/"+stockID+"/adjust", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	svc.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything)
}

func TestAdjustStockHandler_MapsConflict(t *testing.T) {
	svc := new(MockStockService)
	svc.On("AdjustStock", mock.Anything, mock.Anything).
		Return(domain.StockAdjustmentResult{}, apperror.NewConflictError("estoque alterado por outra requisição"))

	body := `{"mode":"add","amount":1,"type":"purchase"}`
	req := httptest.NewRequest(http.MethodPost, "/stocks/"+stockID+"/adjust", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListStocksHandler_StatusFilter(t *testing.T) {
	svc := new(MockStockService)
	svc.On("ListStocks", mock.Anything, domain.StockFilter{Status: domain.StockStatusLowStock}).
		Return([]domain.PartColorStock{{ID: stockID, StockStatus: domain.StockStatusLowStock}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stocks?status=low_stock", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stock_status":"low_stock"`)

	req = httptest.NewRequest(http.MethodGet, "/stocks?status=plenty", nil)
	rec = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNumberOfCalls(t, "ListStocks", 1)
}

func TestGetStockByIDHandler_NotFound(t *testing.T) {
	svc := new(MockStockService)
	svc.On("GetStockByID", mock.Anything, stockID).
		Return(domain.PartColorStock{}, apperror.NewNotFoundError("estoque"))

	req := httptest.NewRequest(http.MethodGet, "/stocks/"+stockID, nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestVerifyLedgerHandler(t *testing.T) {
	svc := new(MockStockService)
	svc.On("VerifyLedger", mock.Anything, stockID).Return(domain.LedgerVerification{
		StockID: stockID, Transactions: 3, ReplayedQuantity: 7, LiveQuantity: 7, Consistent: true,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stocks/"+stockID+"/ledger/verify", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"consistent":true`)
}
