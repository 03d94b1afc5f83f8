package userservice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"partstock/internal/domain"
	apperror "partstock/internal/errors"
	"partstock/internal/pkg/logger"
	"partstock/internal/pkg/token"
	"partstock/internal/service/userservice"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx domain.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx domain.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func newService(repo *MockUserRepository) (*userservice.UserService, *token.Service) {
	tokenSvc := token.NewService("segredo-de-teste", time.Hour)
	return userservice.NewService(repo, tokenSvc, logger.NewNopLogger()), tokenSvc
}

func TestRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc, _ := newService(repo)

	repo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ana@oficina.com" &&
			u.Role == domain.RoleUser &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha-forte")) == nil
	})).Return(domain.User{ID: "u-1", Email: "ana@oficina.com", Role: domain.RoleUser}, nil)

	user, err := svc.Register(context.Background(), domain.UserRegistration{Email: "  Ana@Oficina.com ", Password: "senha-forte"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc, _ := newService(repo)

	repo.On("Save", mock.Anything, mock.Anything).Return(domain.User{}, apperror.NewConflictError("email em uso"))

	_, err := svc.Register(context.Background(), domain.UserRegistration{Email: "a@b.com", Password: "12345678"})

	assert.True(t, apperror.IsConflict(err))
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc, tokenSvc := newService(repo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	repo.On("FindByEmail", mock.Anything, "ana@oficina.com").
		Return(domain.User{ID: "u-1", Email: "ana@oficina.com", PasswordHash: string(hash), Role: domain.RoleAdmin}, nil)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{Email: "ana@oficina.com", Password: "senha-forte"})

	require.NoError(t, err)
	claims, err := tokenSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc, _ := newService(repo)

	hash, _ := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	repo.On("FindByEmail", mock.Anything, "ana@oficina.com").
		Return(domain.User{ID: "u-1", PasswordHash: string(hash)}, nil)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "ana@oficina.com", Password: "errada"})

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}

func TestLogin_UnknownEmailIsUnauthorized(t *testing.T) {
	repo := new(MockUserRepository)
	svc, _ := newService(repo)

	repo.On("FindByEmail", mock.Anything, "x@y.com").Return(domain.User{}, apperror.NewNotFoundError("usuário"))

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "x@y.com", Password: "qualquer"})

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
}
