package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
	"student-coin/internal/repository"
)

// sortColumns whitelists the fields the paginated listing may order by.
var sortColumns = map[string]string{
	"id":          "v.id",
	"descricao":   "v.descricao",
	"custoMoedas": "v.custo_moedas",
}

func advantageSelect() squirrel.SelectBuilder {
	return squirrel.Select("v.id", "v.descricao", "COALESCE(v.foto, '')", "v.custo_moedas", "v.empresa_id", "e.nome_fantasia").
		From("vantagens v").
		Join("empresas e ON v.empresa_id = e.id")
}

func orderClause(sortBy, direction string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "v.id"
	}
	if direction == "desc" {
		return col + " DESC"
	}
	return col + " ASC"
}

func (s *Storage) scanAdvantages(rows pgx.Rows) ([]dto.AdvantageDTO, error) {
	defer rows.Close()

	var items []dto.AdvantageDTO
	for rows.Next() {
		var a dto.AdvantageDTO
		if err := rows.Scan(&a.ID, &a.Description, &a.Photo, &a.CoinCost, &a.CompanyID, &a.CompanyName); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, nil
}

func (s *Storage) countAdvantages(ctx context.Context, pred interface{}, args ...interface{}) (int64, error) {
	builder := squirrel.Select("COUNT(*)").From("vantagens v")
	if pred != nil {
		builder = builder.Where(pred, args...)
	}

	sql, sqlArgs, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.db.QueryRow(ctx, sql, sqlArgs...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Storage) ListAdvantages(ctx context.Context, page, size int, sortBy, direction string) ([]dto.AdvantageDTO, int64, error) {
	const op = "storage.Postgres.ListAdvantages"

	total, err := s.countAdvantages(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	sql, args, err := advantageSelect().
		OrderBy(orderClause(sortBy, direction)).
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.scanAdvantages(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (s *Storage) ListCompanyAdvantages(ctx context.Context, companyID int64, page, size int, sortBy, direction string) ([]dto.AdvantageDTO, int64, error) {
	const op = "storage.Postgres.ListCompanyAdvantages"

	total, err := s.countAdvantages(ctx, squirrel.Eq{"v.empresa_id": companyID})
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	sql, args, err := advantageSelect().
		Where(squirrel.Eq{"v.empresa_id": companyID}).
		OrderBy(orderClause(sortBy, direction)).
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.scanAdvantages(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (s *Storage) GetAdvantage(ctx context.Context, id int64) (dto.AdvantageDTO, error) {
	const op = "storage.Postgres.GetAdvantage"

	sql, args, err := advantageSelect().
		Where(squirrel.Eq{"v.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	var a dto.AdvantageDTO
	err = s.db.QueryRow(ctx, sql, args...).
		Scan(&a.ID, &a.Description, &a.Photo, &a.CoinCost, &a.CompanyID, &a.CompanyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return dto.AdvantageDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (s *Storage) SaveAdvantage(ctx context.Context, companyID int64, a models.Advantage) (int64, error) {
	const op = "storage.Postgres.SaveAdvantage"

	sql, args, err := squirrel.Insert("vantagens").
		Columns("descricao", "foto", "custo_moedas", "empresa_id").
		Values(a.Description, a.Photo, a.CoinCost, companyID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err = s.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateAdvantage(ctx context.Context, companyID, id int64, a models.Advantage) error {
	const op = "storage.Postgres.UpdateAdvantage"

	builder := squirrel.Update("vantagens").
		Set("descricao", a.Description).
		Set("custo_moedas", a.CoinCost).
		Where(squirrel.Eq{"id": id, "empresa_id": companyID})
	if a.Photo != "" {
		builder = builder.Set("foto", a.Photo)
	}

	sql, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (s *Storage) DeleteAdvantage(ctx context.Context, companyID, id int64) error {
	const op = "storage.Postgres.DeleteAdvantage"

	sql, args, err := squirrel.Delete("vantagens").
		Where(squirrel.Eq{"id": id, "empresa_id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

// RedeemAdvantage debits the advantage's cost from the student, appends the
// redeem ledger entry and persists the coupon, all in one transaction. The
// caller supplies the coupon code so code generation stays in the service.
func (s *Storage) RedeemAdvantage(ctx context.Context, advantageID, studentID int64, couponCode string) (dto.RedemptionResponse, error) {
	const op = "storage.Postgres.RedeemAdvantage"

	adv, err := s.GetAdvantage(ctx, advantageID)
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	student, err := s.GetStudentByID(ctx, studentID)
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	company, err := s.GetCompanyByID(ctx, adv.CompanyID)
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	deductQuery, deductArgs, err := squirrel.Update("alunos").
		Set("saldo_moedas", squirrel.Expr("saldo_moedas - ?", adv.CoinCost)).
		Where(squirrel.Eq{"id": studentID}).
		Where("saldo_moedas >= ?", adv.CoinCost).
		Suffix("RETURNING saldo_moedas").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	var newBalance int
	err = tx.QueryRow(ctx, deductQuery, deductArgs...).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = repository.ErrInsufficientBalance
		}
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()

	txQuery, txArgs, err := squirrel.Insert("transacoes").
		Columns("tipo", "data", "valor", "motivo", "aluno_id", "empresa_id").
		Values(models.KindRedeem, now, adv.CoinCost, "Resgate: "+adv.Description, studentID, adv.CompanyID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	_, err = tx.Exec(ctx, txQuery, txArgs...)
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	couponQuery, couponArgs, err := squirrel.Insert("cupons").
		Columns("codigo", "vantagem_id", "aluno_id", "data_resgate").
		Values(couponCode, advantageID, studentID, now).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}
	_, err = tx.Exec(ctx, couponQuery, couponArgs...)
	if err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	return dto.RedemptionResponse{
		AdvantageID:          advantageID,
		AdvantageDescription: adv.Description,
		CoinCost:             adv.CoinCost,
		CouponCode:           couponCode,
		RedeemedAt:           now.Format(time.RFC3339),
		NewBalance:           newBalance,
		StudentEmail:         student.Email,
		StudentName:          student.Name,
		CompanyName:          company.TradeName,
		CompanyEmail:         company.Email,
	}, nil
}
