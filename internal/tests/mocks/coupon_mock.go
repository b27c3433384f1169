package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"student-coin/internal/domain/models"
)

type CouponRepositoryMock struct {
	mock.Mock
}

func (m *CouponRepositoryMock) UseCoupon(ctx context.Context, code string) (models.Coupon, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(models.Coupon), args.Error(1)
}
