package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partstock/internal/api/report"
	"partstock/internal/domain"
	"partstock/internal/pkg/logger"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) TransactionsReport(ctx context.Context, q domain.ReportQuery) (domain.Report, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *MockReportService) OrdersReport(ctx context.Context, q domain.ReportQuery) (domain.Report, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *MockReportService) Dashboard(ctx context.Context) (domain.DashboardSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.DashboardSummary), args.Error(1)
}

func TestTransactionsReportHandler_DefaultsToMonth(t *testing.T) {
	svc := new(MockReportService)
	svc.On("TransactionsReport", mock.Anything, domain.ReportQuery{Granularity: domain.GranularityMonth}).
		Return(domain.Report{
			Granularity: domain.GranularityMonth,
			Field:       "quantity_change",
			Groups:      []domain.PeriodGroup{{Key: "2025-01", Count: 2, Sum: decimal.NewFromInt(15)}},
		}, nil)

	h := report.NewHandler(svc, logger.NewNopLogger())
	rec := httptest.NewRecorder()
	h.TransactionsReportHandler(rec, httptest.NewRequest(http.MethodGet, "/reports/transactions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"key":"2025-01"`)
	svc.AssertExpectations(t)
}

func TestTransactionsReportHandler_WeekWithRange(t *testing.T) {
	svc := new(MockReportService)
	svc.On("TransactionsReport", mock.Anything, domain.ReportQuery{
		Granularity: domain.GranularityWeek,
		Field:       "units_in",
		From:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:        domain.TransactionTypePurchase,
	}).Return(domain.Report{Granularity: domain.GranularityWeek}, nil)

	h := report.NewHandler(svc, logger.NewNopLogger())
	rec := httptest.NewRecorder()
	url := "/reports/transactions?granularity=week&field=units_in&type=purchase&from=2025-01-01&to=2025-01-14"
	h.TransactionsReportHandler(rec, httptest.NewRequest(http.MethodGet, url, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestReportHandlers_RejectInvalidParameters(t *testing.T) {
	svc := new(MockReportService)
	h := report.NewHandler(svc, logger.NewNopLogger())

	cases := map[string]string{
		"granularity": "/reports/orders?granularity=day",
		"date":        "/reports/orders?from=ontem",
		"range":       "/reports/orders?from=2025-02-01&to=2025-01-01",
		"status":      "/reports/orders?status=lost",
	}
	for name, url := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.OrdersReportHandler(rec, httptest.NewRequest(http.MethodGet, url, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	svc.AssertNotCalled(t, "OrdersReport", mock.Anything, mock.Anything)
}

func TestDashboardHandler(t *testing.T) {
	svc := new(MockReportService)
	svc.On("Dashboard", mock.Anything).Return(domain.DashboardSummary{
		TotalStocks: 3,
		ByStatus:    map[domain.StockStatus]int{domain.StockStatusLowStock: 1, domain.StockStatusInStock: 2},
		OpenOrders:  1,
	}, nil)

	h := report.NewHandler(svc, logger.NewNopLogger())
	rec := httptest.NewRecorder()
	h.DashboardHandler(rec, httptest.NewRequest(http.MethodGet, "/reports/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_stocks":3`)
}
