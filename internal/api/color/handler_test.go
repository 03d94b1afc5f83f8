package color_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"partstock/internal/api/color"
	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/validation"
)

type MockColorService struct {
	mock.Mock
}

func (m *MockColorService) CreateColor(ctx domain.Context, c domain.Color) (domain.Color, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Color), args.Error(1)
}

func (m *MockColorService) GetColorByID(ctx domain.Context, id string) (domain.Color, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Color), args.Error(1)
}

func (m *MockColorService) GetAllColors(ctx domain.Context) ([]domain.Color, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Color), args.Error(1)
}

func (m *MockColorService) UpdateColor(ctx domain.Context, c domain.Color) (domain.Color, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Color), args.Error(1)
}

func (m *MockColorService) DeleteColor(ctx domain.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter(svc *MockColorService) http.Handler {
	h := color.NewHandler(svc, validation.New(), logger.NewNopLogger())
	r := chi.NewRouter()
	r.Post("/colors", h.CreateColorHandler)
	r.Get("/colors", h.GetAllColorsHandler)
	r.Get("/colors/{id}", h.GetColorByIDHandler)
	return r
}

func TestCreateColorHandler(t *testing.T) {
	svc := new(MockColorService)
	svc.On("CreateColor", mock.Anything, domain.Color{Name: "Vermelho", HexCode: "#ff0000"}).
		Return(domain.Color{ID: "c1", Name: "Vermelho", HexCode: "#FF0000"}, nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/colors",
		strings.NewReader(`{"name":"Vermelho","hex_code":"#ff0000"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "#FF0000")
}

func TestCreateColorHandler_InvalidHex(t *testing.T) {
	svc := new(MockColorService)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/colors",
		strings.NewReader(`{"name":"Vermelho","hex_code":"vermelho"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateColor", mock.Anything, mock.Anything)
}

func TestGetColorHandlers(t *testing.T) {
	svc := new(MockColorService)
	svc.On("GetAllColors", mock.Anything).Return([]domain.Color{{ID: "c1", Name: "Azul"}}, nil)
	svc.On("GetColorByID", mock.Anything, "nope").Return(domain.Color{}, apperror.NewNotFoundError("cor"))

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/colors", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Azul")

	rec = httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/colors/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
