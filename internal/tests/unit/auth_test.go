package unit

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"student-coin/internal/domain/dto"
	"student-coin/internal/lib/jwt"
	"student-coin/internal/middlewares"
	"student-coin/internal/repository"
	"student-coin/internal/services"
	"student-coin/internal/tests/mocks"
)

func testGenerator() *jwt.Generator {
	return jwt.NewGenerator("secret_key", 15*time.Minute, 24*time.Hour)
}

func hash(t *testing.T, password string) []byte {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return h
}

func TestAuthService_Login_ReturnsProfileWithTokens(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.AuthRepositoryMock)
	repo.On("LoginUser", ctx, "ana@uni.br").
		Return(dto.LoginResponse{ID: 1, Name: "Ana Lima", Email: "ana@uni.br", Role: "aluno"}, hash(t, "demo-moedas"), nil).Once()

	redis := new(mocks.RedisClientMock)
	redis.On("StoreRefreshToken", ctx, "1", mock.AnythingOfType("string")).Return(nil).Once()

	service := services.NewAuthService(slog.Default(), repo, redis, testGenerator())

	// Act
	profile, err := service.Login(ctx, "ana@uni.br", "demo-moedas")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", profile.Name)
	assert.Equal(t, "aluno", profile.Role)
	assert.NotEmpty(t, profile.Token)
	assert.NotEmpty(t, profile.RefreshToken)
	repo.AssertExpectations(t)
	redis.AssertExpectations(t)
}

func TestAuthService_Login_RejectsWrongPassword(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.AuthRepositoryMock)
	repo.On("LoginUser", ctx, "ana@uni.br").
		Return(dto.LoginResponse{ID: 1, Role: "aluno"}, hash(t, "demo-moedas"), nil).Once()

	service := services.NewAuthService(slog.Default(), repo, new(mocks.RedisClientMock), testGenerator())

	// Act
	_, err := service.Login(ctx, "ana@uni.br", "senha-errada")

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUserMapsToInvalidCredentials(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.AuthRepositoryMock)
	repo.On("LoginUser", ctx, "ghost@uni.br").
		Return(dto.LoginResponse{}, []byte(nil), repository.ErrUserNotFound).Once()

	service := services.NewAuthService(slog.Default(), repo, new(mocks.RedisClientMock), testGenerator())

	// Act
	_, err := service.Login(ctx, "ghost@uni.br", "demo-moedas")

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestAuthService_Login_RejectsEmptyInput(t *testing.T) {
	// Arrange
	repo := new(mocks.AuthRepositoryMock)
	service := services.NewAuthService(slog.Default(), repo, new(mocks.RedisClientMock), testGenerator())

	// Act
	_, err := service.Login(context.Background(), "", "")

	// Assert
	assert.ErrorIs(t, err, middlewares.ErrEmptyField)
	repo.AssertNotCalled(t, "LoginUser", mock.Anything, mock.Anything)
}

func TestAuthService_Login_RejectsShortPasswordBeforeLookup(t *testing.T) {
	// Arrange
	repo := new(mocks.AuthRepositoryMock)
	service := services.NewAuthService(slog.Default(), repo, new(mocks.RedisClientMock), testGenerator())

	// Act
	_, err := service.Login(context.Background(), "ana@uni.br", "demo")

	// Assert
	assert.ErrorIs(t, err, middlewares.ErrPasswordTooShort)
	repo.AssertNotCalled(t, "LoginUser", mock.Anything, mock.Anything)
}

func TestAuthService_Login_SurfacesRefreshStoreFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.AuthRepositoryMock)
	repo.On("LoginUser", ctx, "ana@uni.br").
		Return(dto.LoginResponse{ID: 1, Role: "aluno"}, hash(t, "demo-moedas"), nil).Once()

	redis := new(mocks.RedisClientMock)
	redis.On("StoreRefreshToken", ctx, "1", mock.AnythingOfType("string")).
		Return(errors.New("redis down")).Once()

	service := services.NewAuthService(slog.Default(), repo, redis, testGenerator())

	// Act
	_, err := service.Login(ctx, "ana@uni.br", "demo-moedas")

	// Assert
	assert.ErrorIs(t, err, services.ErrFailedToStoreRefreshToken)
	repo.AssertExpectations(t)
	redis.AssertExpectations(t)
}
