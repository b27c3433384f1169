package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
)

type CouponService struct {
	log              *slog.Logger
	couponRepository CouponRepository
}

type CouponRepository interface {
	UseCoupon(ctx context.Context, code string) (models.Coupon, error)
}

func NewCouponService(log *slog.Logger, couponRepository CouponRepository) *CouponService {
	return &CouponService{
		log:              log,
		couponRepository: couponRepository,
	}
}

// Use marks the coupon as used at the partner company's counter. Reuse and
// expiry are rejected by the repository.
func (s *CouponService) Use(ctx context.Context, code string) (dto.CouponUseResponse, error) {
	const op = "services.CouponService.Use"

	log := s.log.With(
		slog.String("op", op),
		slog.String("code", code),
	)

	cp, err := s.couponRepository.UseCoupon(ctx, code)
	if err != nil {
		log.Info("coupon use refused", slog.String("error", err.Error()))
		return dto.CouponUseResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("coupon used", slog.Int64("advantage_id", cp.AdvantageID))

	usedAt := ""
	if cp.UsedAt != nil {
		usedAt = cp.UsedAt.Format(time.RFC3339)
	}

	return dto.CouponUseResponse{
		Code:        cp.Code,
		Used:        cp.Used,
		UsedAt:      usedAt,
		AdvantageID: cp.AdvantageID,
	}, nil
}
