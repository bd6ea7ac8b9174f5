package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	userRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/user"
)

const testSecret = "test-secret"

// Mock структуры

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func activeUser(id int64, role domain.UserRole) *domain.User {
	return &domain.User{ID: id, Role: role, IsActive: true}
}

func TestResolver_Resolve(t *testing.T) {
	users := &MockUserRepository{}
	resolver := NewResolver(users, testSecret, noopLogger{})
	ctx := context.Background()

	token, err := NewToken(10, time.Hour, testSecret)
	require.NoError(t, err)

	users.On("GetByID", ctx, int64(10)).Return(activeUser(10, domain.RoleUser), nil).Once()

	principal, err := resolver.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(10), principal.UserID)
	assert.Equal(t, domain.RoleUser, principal.Role)
	assert.True(t, principal.IsActive)

	users.AssertExpectations(t)
}

func TestResolver_Resolve_ExpiredToken(t *testing.T) {
	users := &MockUserRepository{}
	resolver := NewResolver(users, testSecret, noopLogger{})

	token, err := NewToken(10, -time.Hour, testSecret)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	users.AssertNotCalled(t, "GetByID")
}

func TestResolver_Resolve_WrongSecret(t *testing.T) {
	users := &MockUserRepository{}
	resolver := NewResolver(users, testSecret, noopLogger{})

	token, err := NewToken(10, time.Hour, "another-secret")
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

// Токен с алгоритмом none отвергается независимо от подписи
func TestResolver_Resolve_WrongSigningMethod(t *testing.T) {
	users := &MockUserRepository{}
	resolver := NewResolver(users, testSecret, noopLogger{})

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(10, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolver_Resolve_GarbageToken(t *testing.T) {
	users := &MockUserRepository{}
	resolver := NewResolver(users, testSecret, noopLogger{})

	_, err := resolver.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolver_Resolve_UserNotFound(t *testing.T) {
	users := &MockUserRepository{}
	resolver := NewResolver(users, testSecret, noopLogger{})
	ctx := context.Background()

	token, err := NewToken(10, time.Hour, testSecret)
	require.NoError(t, err)

	users.On("GetByID", ctx, int64(10)).Return(nil, userRepo.ErrUserNotFound).Once()

	_, err = resolver.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolver_Resolve_InactiveAccount(t *testing.T) {
	users := &MockUserRepository{}
	resolver := NewResolver(users, testSecret, noopLogger{})
	ctx := context.Background()

	token, err := NewToken(10, time.Hour, testSecret)
	require.NoError(t, err)

	inactive := activeUser(10, domain.RoleUser)
	inactive.IsActive = false
	users.On("GetByID", ctx, int64(10)).Return(inactive, nil).Once()

	_, err = resolver.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrInactiveAccount)
}
