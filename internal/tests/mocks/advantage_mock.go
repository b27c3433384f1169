package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
)

type AdvantageRepositoryMock struct {
	mock.Mock
}

func (m *AdvantageRepositoryMock) ListAdvantages(ctx context.Context, page, size int, sortBy, direction string) ([]dto.AdvantageDTO, int64, error) {
	args := m.Called(ctx, page, size, sortBy, direction)
	return args.Get(0).([]dto.AdvantageDTO), args.Get(1).(int64), args.Error(2)
}

func (m *AdvantageRepositoryMock) ListCompanyAdvantages(ctx context.Context, companyID int64, page, size int, sortBy, direction string) ([]dto.AdvantageDTO, int64, error) {
	args := m.Called(ctx, companyID, page, size, sortBy, direction)
	return args.Get(0).([]dto.AdvantageDTO), args.Get(1).(int64), args.Error(2)
}

func (m *AdvantageRepositoryMock) GetAdvantage(ctx context.Context, id int64) (dto.AdvantageDTO, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.AdvantageDTO), args.Error(1)
}

func (m *AdvantageRepositoryMock) SaveAdvantage(ctx context.Context, companyID int64, a models.Advantage) (int64, error) {
	args := m.Called(ctx, companyID, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AdvantageRepositoryMock) UpdateAdvantage(ctx context.Context, companyID, id int64, a models.Advantage) error {
	args := m.Called(ctx, companyID, id, a)
	return args.Error(0)
}

func (m *AdvantageRepositoryMock) DeleteAdvantage(ctx context.Context, companyID, id int64) error {
	args := m.Called(ctx, companyID, id)
	return args.Error(0)
}

func (m *AdvantageRepositoryMock) RedeemAdvantage(ctx context.Context, advantageID, studentID int64, couponCode string) (dto.RedemptionResponse, error) {
	args := m.Called(ctx, advantageID, studentID, couponCode)
	return args.Get(0).(dto.RedemptionResponse), args.Error(1)
}
