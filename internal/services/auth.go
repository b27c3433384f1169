package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"student-coin/internal/domain/dto"
	"student-coin/internal/lib/jwt"
	"student-coin/internal/middlewares"
	"student-coin/internal/repository"
)

type AuthService struct {
	log            *slog.Logger
	authRepository AuthRepository
	redis          RedisClient
	jwtGen         *jwt.Generator
}

type AuthRepository interface {
	LoginUser(ctx context.Context, input string) (dto.LoginResponse, []byte, error)
}

type RedisClient interface {
	StoreRefreshToken(ctx context.Context, userID, refreshToken string) error
}

var (
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrUserAlreadyExists         = errors.New("user already exists")
	ErrFailedToGenerateTokens    = errors.New("failed to generate tokens")
	ErrFailedToStoreRefreshToken = errors.New("failed to store refresh token")
)

func NewAuthService(log *slog.Logger, authRepository AuthRepository, redis RedisClient,
	jwtGen *jwt.Generator) *AuthService {
	return &AuthService{
		log:            log,
		authRepository: authRepository,
		redis:          redis,
		jwtGen:         jwtGen,
	}
}

// Login authenticates an account (student, professor or partner company) by
// login or email and returns its profile with a fresh token pair.
func (s *AuthService) Login(ctx context.Context, login, password string) (dto.LoginResponse, error) {
	const op = "services.AuthService.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("login", login),
	)

	if err := middlewares.CheckInput(login, password); err != nil {
		log.Info("invalid input", slog.String("error", err.Error()))
		return dto.LoginResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	profile, storedHash, err := s.authRepository.LoginUser(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found")
			return dto.LoginResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to login user", slog.String("error", err.Error()))
		return dto.LoginResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(storedHash, []byte(password)); err != nil {
		log.Info("invalid credentials")
		return dto.LoginResponse{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	id := strconv.FormatInt(profile.ID, 10)

	accessToken, refreshToken, err := s.jwtGen.GeneratePair(id, profile.Role)
	if err != nil {
		log.Error("failed to generate tokens", slog.String("error", err.Error()))
		return dto.LoginResponse{}, fmt.Errorf("%s: %w", op, ErrFailedToGenerateTokens)
	}

	if err := s.redis.StoreRefreshToken(ctx, id, refreshToken); err != nil {
		log.Error("failed to store refresh token", slog.String("error", err.Error()))
		return dto.LoginResponse{}, fmt.Errorf("%s: %w", op, ErrFailedToStoreRefreshToken)
	}

	log.Info("user logged in", slog.String("role", profile.Role))

	profile.Token = accessToken
	profile.RefreshToken = refreshToken

	return profile, nil
}
