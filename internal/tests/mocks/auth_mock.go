package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"student-coin/internal/domain/dto"
)

type AuthRepositoryMock struct {
	mock.Mock
}

func (m *AuthRepositoryMock) LoginUser(ctx context.Context, input string) (dto.LoginResponse, []byte, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(dto.LoginResponse), args.Get(1).([]byte), args.Error(2)
}
