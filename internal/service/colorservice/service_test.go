package colorservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/logger"
	"partstock/internal/service/colorservice"
)

// MockColorRepository é uma implementação mock da interface ColorRepository
type MockColorRepository struct {
	mock.Mock
}

func (m *MockColorRepository) CreateColor(ctx context.Context, color domain.Color) (domain.Color, error) {
	args := m.Called(ctx, color)
	return args.Get(0).(domain.Color), args.Error(1)
}

func (m *MockColorRepository) GetColorByID(ctx context.Context, id string) (domain.Color, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Color), args.Error(1)
}

func (m *MockColorRepository) GetAllColors(ctx context.Context) ([]domain.Color, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Color), args.Error(1)
}

func (m *MockColorRepository) UpdateColor(ctx context.Context, color domain.Color) (domain.Color, error) {
	args := m.Called(ctx, color)
	return args.Get(0).(domain.Color), args.Error(1)
}

func (m *MockColorRepository) DeleteColor(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestLogger() logger.Logger {
	return logger.NewNopLogger()
}

func TestCreateColor_Success(t *testing.T) {
	mockRepo := new(MockColorRepository)
	svc := colorservice.NewService(mockRepo, nil, newTestLogger())

	input := domain.Color{Name: "Vermelho", HexCode: "#ff0000"}
	normalized := domain.Color{Name: "Vermelho", HexCode: "#FF0000"}
	mockRepo.On("CreateColor", mock.Anything, normalized).Return(domain.Color{ID: uuid.NewString(), Name: "Vermelho", HexCode: "#FF0000"}, nil)

	result, err := svc.CreateColor(context.Background(), input)

	assert.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	mockRepo.AssertExpectations(t)
}

func TestCreateColor_Fail_InvalidName(t *testing.T) {
	mockRepo := new(MockColorRepository)
	svc := colorservice.NewService(mockRepo, nil, newTestLogger())

	_, err := svc.CreateColor(context.Background(), domain.Color{Name: "  "})

	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "não pode ser vazio")
	mockRepo.AssertNotCalled(t, "CreateColor")
}

func TestCreateColor_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockColorRepository)
	svc := colorservice.NewService(mockRepo, nil, newTestLogger())

	dbErr := apperror.NewDBError("Falha ao criar cor", errors.New("connection refused"))
	mockRepo.On("CreateColor", mock.Anything, mock.Anything).Return(domain.Color{}, dbErr)

	_, err := svc.CreateColor(context.Background(), domain.Color{Name: "Azul"})

	assert.IsType(t, &apperror.InternalError{}, err)
}

func TestGetColorByID_Fail_InvalidID(t *testing.T) {
	mockRepo := new(MockColorRepository)
	svc := colorservice.NewService(mockRepo, nil, newTestLogger())

	_, err := svc.GetColorByID(context.Background(), "invalid-uuid")

	assert.IsType(t, &apperror.ValidationError{}, err)
	mockRepo.AssertNotCalled(t, "GetColorByID")
}

func TestGetAllColors_WithoutCache(t *testing.T) {
	mockRepo := new(MockColorRepository)
	svc := colorservice.NewService(mockRepo, nil, newTestLogger())

	colors := []domain.Color{{ID: uuid.NewString(), Name: "Azul"}, {ID: uuid.NewString(), Name: "Preto"}}
	mockRepo.On("GetAllColors", mock.Anything).Return(colors, nil).Twice()

	for i := 0; i < 2; i++ {
		result, err := svc.GetAllColors(context.Background())
		assert.NoError(t, err)
		assert.Len(t, result, 2)
	}
	mockRepo.AssertExpectations(t)
}

func TestUpdateColor_NotFound(t *testing.T) {
	mockRepo := new(MockColorRepository)
	svc := colorservice.NewService(mockRepo, nil, newTestLogger())

	id := uuid.NewString()
	mockRepo.On("UpdateColor", mock.Anything, domain.Color{ID: id, Name: "Verde"}).Return(domain.Color{}, apperror.NewNotFoundError("cor"))

	_, err := svc.UpdateColor(context.Background(), domain.Color{ID: id, Name: "Verde"})

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteColor_Success(t *testing.T) {
	mockRepo := new(MockColorRepository)
	svc := colorservice.NewService(mockRepo, nil, newTestLogger())

	id := uuid.NewString()
	mockRepo.On("DeleteColor", mock.Anything, id).Return(nil)

	assert.NoError(t, svc.DeleteColor(context.Background(), id))
	mockRepo.AssertExpectations(t)
}
