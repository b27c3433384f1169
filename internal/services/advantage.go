package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
)

var ErrInvalidAdvantage = errors.New("advantage needs a description and a positive coin cost")

const (
	defaultPage = 0
	defaultSize = 10
)

type AdvantageService struct {
	log                 *slog.Logger
	advantageRepository AdvantageRepository
}

type AdvantageRepository interface {
	ListAdvantages(ctx context.Context, page, size int, sortBy, direction string) ([]dto.AdvantageDTO, int64, error)
	ListCompanyAdvantages(ctx context.Context, companyID int64, page, size int, sortBy, direction string) ([]dto.AdvantageDTO, int64, error)
	GetAdvantage(ctx context.Context, id int64) (dto.AdvantageDTO, error)
	SaveAdvantage(ctx context.Context, companyID int64, a models.Advantage) (int64, error)
	UpdateAdvantage(ctx context.Context, companyID, id int64, a models.Advantage) error
	DeleteAdvantage(ctx context.Context, companyID, id int64) error
	RedeemAdvantage(ctx context.Context, advantageID, studentID int64, couponCode string) (dto.RedemptionResponse, error)
}

func NewAdvantageService(log *slog.Logger, advantageRepository AdvantageRepository) *AdvantageService {
	return &AdvantageService{
		log:                 log,
		advantageRepository: advantageRepository,
	}
}

func normalizePage(page, size int) (int, int) {
	if page < 0 {
		page = defaultPage
	}
	if size <= 0 {
		size = defaultSize
	}
	return page, size
}

func (s *AdvantageService) List(ctx context.Context, page, size int, sortBy, direction string) (dto.PageResponse[dto.AdvantageDTO], error) {
	const op = "services.AdvantageService.List"

	page, size = normalizePage(page, size)

	items, total, err := s.advantageRepository.ListAdvantages(ctx, page, size, sortBy, direction)
	if err != nil {
		return dto.PageResponse[dto.AdvantageDTO]{}, fmt.Errorf("%s: %w", op, err)
	}

	return dto.PageResponse[dto.AdvantageDTO]{
		Items:      items,
		Pagination: dto.NewPagination(page, size, total),
	}, nil
}

func (s *AdvantageService) ListByCompany(ctx context.Context, companyID int64, page, size int, sortBy, direction string) (dto.PageResponse[dto.AdvantageDTO], error) {
	const op = "services.AdvantageService.ListByCompany"

	page, size = normalizePage(page, size)

	items, total, err := s.advantageRepository.ListCompanyAdvantages(ctx, companyID, page, size, sortBy, direction)
	if err != nil {
		return dto.PageResponse[dto.AdvantageDTO]{}, fmt.Errorf("%s: %w", op, err)
	}

	return dto.PageResponse[dto.AdvantageDTO]{
		Items:      items,
		Pagination: dto.NewPagination(page, size, total),
	}, nil
}

func (s *AdvantageService) Get(ctx context.Context, id int64) (dto.AdvantageDTO, error) {
	const op = "services.AdvantageService.Get"

	a, err := s.advantageRepository.GetAdvantage(ctx, id)
	if err != nil {
		return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *AdvantageService) Create(ctx context.Context, companyID int64, in dto.AdvantageDTO) (dto.AdvantageDTO, error) {
	const op = "services.AdvantageService.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("company_id", companyID),
	)

	if in.Description == "" || in.CoinCost <= 0 {
		return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, ErrInvalidAdvantage)
	}

	id, err := s.advantageRepository.SaveAdvantage(ctx, companyID, models.Advantage{
		Description: in.Description,
		Photo:       in.Photo,
		CoinCost:    in.CoinCost,
	})
	if err != nil {
		log.Error("failed to save advantage", slog.String("error", err.Error()))
		return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("advantage created", slog.Int64("id", id))

	return s.Get(ctx, id)
}

func (s *AdvantageService) Update(ctx context.Context, companyID, id int64, in dto.AdvantageDTO) (dto.AdvantageDTO, error) {
	const op = "services.AdvantageService.Update"

	if in.Description == "" || in.CoinCost <= 0 {
		return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, ErrInvalidAdvantage)
	}

	err := s.advantageRepository.UpdateAdvantage(ctx, companyID, id, models.Advantage{
		Description: in.Description,
		Photo:       in.Photo,
		CoinCost:    in.CoinCost,
	})
	if err != nil {
		return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.Get(ctx, id)
}

func (s *AdvantageService) Delete(ctx context.Context, companyID, id int64) error {
	const op = "services.AdvantageService.Delete"

	if err := s.advantageRepository.DeleteAdvantage(ctx, companyID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Redeem exchanges a student's coins for an advantage and issues the
// fulfillment coupon.
func (s *AdvantageService) Redeem(ctx context.Context, advantageID, studentID int64) (dto.RedemptionResponse, error) {
	const op = "services.AdvantageService.Redeem"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("advantage_id", advantageID),
		slog.Int64("student_id", studentID),
	)

	couponCode := "CUPOM-" + uuid.NewString()

	log.Info("redeeming advantage")

	resp, err := s.advantageRepository.RedeemAdvantage(ctx, advantageID, studentID, couponCode)
	if err != nil {
		log.Error("failed to redeem advantage", slog.String("error", err.Error()))
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("advantage redeemed", slog.Int("new_balance", resp.NewBalance))

	return resp, nil
}
