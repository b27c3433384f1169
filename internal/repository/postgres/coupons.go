package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"student-coin/internal/domain/models"
	"student-coin/internal/repository"
)

func (s *Storage) GetCouponByCode(ctx context.Context, code string) (models.Coupon, error) {
	const op = "storage.Postgres.GetCouponByCode"

	sql, args, err := squirrel.Select("id", "codigo", "vantagem_id", "aluno_id", "data_resgate", "utilizado", "data_utilizacao", "data_vencimento").
		From("cupons").
		Where(squirrel.Eq{"codigo": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.Coupon{}, fmt.Errorf("%s: %w", op, err)
	}

	var cp models.Coupon
	err = s.db.QueryRow(ctx, sql, args...).
		Scan(&cp.ID, &cp.Code, &cp.AdvantageID, &cp.StudentID, &cp.RedeemedAt, &cp.Used, &cp.UsedAt, &cp.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Coupon{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return models.Coupon{}, fmt.Errorf("%s: %w", op, err)
	}

	return cp, nil
}

// UseCoupon marks the coupon behind code as used. The guarded UPDATE only
// matches an unused row, so a concurrent second use loses the race and gets
// ErrCouponUsed.
func (s *Storage) UseCoupon(ctx context.Context, code string) (models.Coupon, error) {
	const op = "storage.Postgres.UseCoupon"

	cp, err := s.GetCouponByCode(ctx, code)
	if err != nil {
		return models.Coupon{}, fmt.Errorf("%s: %w", op, err)
	}

	if cp.Used {
		return models.Coupon{}, fmt.Errorf("%s: %w", op, repository.ErrCouponUsed)
	}

	now := time.Now()

	if cp.ExpiresAt != nil && cp.ExpiresAt.Before(now) {
		return models.Coupon{}, fmt.Errorf("%s: %w", op, repository.ErrCouponExpired)
	}

	sql, args, err := squirrel.Update("cupons").
		Set("utilizado", true).
		Set("data_utilizacao", now).
		Where(squirrel.Eq{"id": cp.ID, "utilizado": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.Coupon{}, fmt.Errorf("%s: %w", op, err)
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return models.Coupon{}, fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return models.Coupon{}, fmt.Errorf("%s: %w", op, repository.ErrCouponUsed)
	}

	cp.Used = true
	cp.UsedAt = &now

	return cp, nil
}
