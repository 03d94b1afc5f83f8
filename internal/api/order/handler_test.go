package order_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partstock/internal/api/order"
	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/middleware"
	"partstock/internal/pkg/validation"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx domain.Context, req domain.OrderCreateRequest) (domain.Order, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx domain.Context, id string) (domain.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx domain.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx domain.Context, id string, to domain.OrderStatus) (domain.Order, error) {
	args := m.Called(ctx, id, to)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderService) RecordDelivery(ctx domain.Context, orderID string, req domain.DeliveryRequest) (domain.DeliveryResult, error) {
	args := m.Called(ctx, orderID, req)
	return args.Get(0).(domain.DeliveryResult), args.Error(1)
}

const (
	orderID = "8d2f3a1b-6c4e-4f5a-8b9c-0d1e2f3a4b5c"
	itemA   = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	itemB   = "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"
)

func newRouter(svc *MockOrderService) http.Handler {
	h := order.NewHandler(svc, validation.New(), logger.NewNopLogger())
	r := chi.NewRouter()
	r.Post("/orders", h.CreateOrderHandler)
	r.Get("/orders", h.ListOrdersHandler)
	r.Patch("/orders/{id}/status", h.UpdateStatusHandler)
	r.Post("/orders/{id}/deliveries", h.RecordDeliveryHandler)
	return r
}

func TestCreateOrderHandler_RequiresItems(t *testing.T) {
	svc := new(MockOrderService)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"supplier":"ACME","items":[]}`))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrderHandler_Created(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req domain.OrderCreateRequest) bool {
		return req.Supplier == "ACME" && len(req.Items) == 1 && req.Items[0].QuantityOrdered == 10
	})).Return(domain.Order{ID: orderID, OrderNumber: "PO-20250101-ABCDEF12", Status: domain.OrderStatusWaitingForAnswer}, nil)

	body := `{"supplier":"ACME","items":[{"stock_id":"` + itemA + `","quantity_ordered":10,"unit_price":"2.50"}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "PO-20250101-ABCDEF12")
	svc.AssertExpectations(t)
}

func TestListOrdersHandler_ParsesDateRange(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("ListOrders", mock.Anything, domain.OrderFilter{
		Status: domain.OrderStatusOrdered,
		From:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}).Return([]domain.Order{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/orders?status=ordered&from=2025-01-01&to=2025-01-31", nil)
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateStatusHandler_RejectsDeliveredStatus(t *testing.T) {
	svc := new(MockOrderService)

	req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID+"/status", strings.NewReader(`{"status":"delivered"}`))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusHandler_InvalidTransition(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("UpdateStatus", mock.Anything, orderID, domain.OrderStatusToOrder).
		Return(domain.Order{}, apperror.NewConflictError("transição de 'ordered' para 'to_order' não permitida"))

	req := httptest.NewRequest(http.MethodPatch, "/orders/"+orderID+"/status", strings.NewReader(`{"status":"to_order"}`))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecordDeliveryHandler_PassesLinesAndUser(t *testing.T) {
	svc := new(MockOrderService)
	expected := domain.DeliveryRequest{
		Deliveries: []domain.DeliveryLine{{ItemID: itemA, Quantity: 6}, {ItemID: itemB, Quantity: 0}},
		CreatedBy:  "admin-1",
	}
	svc.On("RecordDelivery", mock.Anything, orderID, expected).Return(domain.DeliveryResult{
		Order: domain.Order{ID: orderID, Status: domain.OrderStatusPartialDelivered},
	}, nil)

	body := `{"deliveries":[{"item_id":"` + itemA + `","quantity":6},{"item_id":"` + itemB + `","quantity":0}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/deliveries", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: "admin-1", Role: domain.RoleAdmin}))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"partial_delivered"`)
	svc.AssertExpectations(t)
}

func TestRecordDeliveryHandler_RejectsNegativeQuantity(t *testing.T) {
	svc := new(MockOrderService)

	body := `{"deliveries":[{"item_id":"` + itemA + `","quantity":-1}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID+"/deliveries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
