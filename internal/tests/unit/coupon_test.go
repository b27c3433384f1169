package unit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-coin/internal/domain/models"
	"student-coin/internal/repository"
	"student-coin/internal/services"
	"student-coin/internal/tests/mocks"
)

func TestCouponService_Use_MarksCouponUsed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	usedAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	repo := new(mocks.CouponRepositoryMock)
	repo.On("UseCoupon", ctx, "CUPOM-abc").
		Return(models.Coupon{
			ID:          7,
			Code:        "CUPOM-abc",
			AdvantageID: 3,
			StudentID:   1,
			Used:        true,
			UsedAt:      &usedAt,
		}, nil).Once()

	service := services.NewCouponService(slog.Default(), repo)

	// Act
	result, err := service.Use(ctx, "CUPOM-abc")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "CUPOM-abc", result.Code)
	assert.True(t, result.Used)
	assert.Equal(t, "2026-03-10T14:30:00Z", result.UsedAt)
	assert.Equal(t, int64(3), result.AdvantageID)
	repo.AssertExpectations(t)
}

func TestCouponService_Use_RejectsReuse(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.CouponRepositoryMock)
	repo.On("UseCoupon", ctx, "CUPOM-abc").
		Return(models.Coupon{}, repository.ErrCouponUsed).Once()

	service := services.NewCouponService(slog.Default(), repo)

	// Act
	_, err := service.Use(ctx, "CUPOM-abc")

	// Assert
	assert.ErrorIs(t, err, repository.ErrCouponUsed)
	repo.AssertExpectations(t)
}

func TestCouponService_Use_RejectsExpiredCoupon(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.CouponRepositoryMock)
	repo.On("UseCoupon", ctx, "CUPOM-velho").
		Return(models.Coupon{}, repository.ErrCouponExpired).Once()

	service := services.NewCouponService(slog.Default(), repo)

	// Act
	_, err := service.Use(ctx, "CUPOM-velho")

	// Assert
	assert.ErrorIs(t, err, repository.ErrCouponExpired)
	repo.AssertExpectations(t)
}

func TestCouponService_Use_UnknownCodeIsNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.CouponRepositoryMock)
	repo.On("UseCoupon", ctx, "CUPOM-ghost").
		Return(models.Coupon{}, repository.ErrNotFound).Once()

	service := services.NewCouponService(slog.Default(), repo)

	// Act
	_, err := service.Use(ctx, "CUPOM-ghost")

	// Assert
	assert.ErrorIs(t, err, repository.ErrNotFound)
	repo.AssertExpectations(t)
}
