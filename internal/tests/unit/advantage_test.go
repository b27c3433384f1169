package unit

import (
	"context"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"student-coin/internal/domain/dto"
	"student-coin/internal/repository"
	"student-coin/internal/services"
	"student-coin/internal/tests/mocks"
)

func TestAdvantageService_Redeem_IssuesServerCoupon(t *testing.T) {
	// Arrange
	ctx := context.Background()
	couponPattern := regexp.MustCompile(`^CUPOM-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	repo := new(mocks.AdvantageRepositoryMock)
	repo.On("RedeemAdvantage", ctx, int64(3), int64(1), mock.MatchedBy(func(code string) bool {
		return couponPattern.MatchString(code)
	})).Return(dto.RedemptionResponse{
		AdvantageID: 3,
		CoinCost:    500,
		NewBalance:  750,
		CouponCode:  "CUPOM-test",
	}, nil).Once()

	service := services.NewAdvantageService(slog.Default(), repo)

	// Act
	resp, err := service.Redeem(ctx, 3, 1)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 750, resp.NewBalance)
	repo.AssertExpectations(t)
}

func TestAdvantageService_Redeem_PropagatesInsufficientBalance(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.AdvantageRepositoryMock)
	repo.On("RedeemAdvantage", ctx, int64(3), int64(1), mock.AnythingOfType("string")).
		Return(dto.RedemptionResponse{}, repository.ErrInsufficientBalance).Once()

	service := services.NewAdvantageService(slog.Default(), repo)

	// Act
	_, err := service.Redeem(ctx, 3, 1)

	// Assert
	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)
	repo.AssertExpectations(t)
}

func TestAdvantageService_Create_RejectsInvalidInput(t *testing.T) {
	// Arrange
	service := services.NewAdvantageService(slog.Default(), new(mocks.AdvantageRepositoryMock))

	// Act
	_, err := service.Create(context.Background(), 1, dto.AdvantageDTO{Description: "", CoinCost: 0})

	// Assert
	assert.ErrorIs(t, err, services.ErrInvalidAdvantage)
}

func TestAdvantageService_List_BuildsPageEnvelope(t *testing.T) {
	// Arrange
	ctx := context.Background()

	repo := new(mocks.AdvantageRepositoryMock)
	repo.On("ListAdvantages", ctx, 1, 10, "custoMoedas", "asc").
		Return([]dto.AdvantageDTO{{ID: 11, Description: "Meia-entrada", CoinCost: 500}}, int64(25), nil).Once()

	service := services.NewAdvantageService(slog.Default(), repo)

	// Act
	page, err := service.List(ctx, 1, 10, "custoMoedas", "asc")

	// Assert
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Pagination.CurrentPage)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, int64(25), page.Pagination.TotalItems)
	assert.True(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrevious)
	repo.AssertExpectations(t)
}
