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

func (s *Storage) SaveProfessor(ctx context.Context, p models.Professor) (int64, error) {
	const op = "storage.Postgres.SaveProfessor"

	sql, args, err := squirrel.Insert("professores").
		Columns("nome", "cpf", "departamento", "email", "login", "senha", "saldo_moedas", "instituicao_id").
		Values(p.Name, p.CPF, p.Department, p.Email, p.Login, p.Password, p.CoinBalance, p.InstitutionID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var id int64
	err = s.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, repository.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetProfessorByID(ctx context.Context, id int64) (models.Professor, error) {
	const op = "storage.Postgres.GetProfessorByID"

	sql, args, err := squirrel.Select("id", "nome", "cpf", "departamento", "email", "login", "saldo_moedas", "instituicao_id").
		From("professores").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.Professor{}, fmt.Errorf("%s: %w", op, err)
	}

	var p models.Professor
	err = s.db.QueryRow(ctx, sql, args...).
		Scan(&p.ID, &p.Name, &p.CPF, &p.Department, &p.Email, &p.Login, &p.CoinBalance, &p.InstitutionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Professor{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return models.Professor{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// TransferCoins moves amount from a professor's allowance to a student and
// records both sides of the movement in the same transaction.
func (s *Storage) TransferCoins(ctx context.Context, professorID, studentID int64, amount int, reason string) error {
	const op = "storage.Postgres.TransferCoins"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	deductQuery, deductArgs, err := squirrel.Update("professores").
		Set("saldo_moedas", squirrel.Expr("saldo_moedas - ?", amount)).
		Where(squirrel.Eq{"id": professorID}).
		Where("saldo_moedas >= ?", amount).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err := tx.Exec(ctx, deductQuery, deductArgs...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		err = repository.ErrInsufficientBalance
		return fmt.Errorf("%s: %w", op, err)
	}

	addQuery, addArgs, err := squirrel.Update("alunos").
		Set("saldo_moedas", squirrel.Expr("saldo_moedas + ?", amount)).
		Where(squirrel.Eq{"id": studentID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cmdTag, err = tx.Exec(ctx, addQuery, addArgs...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if cmdTag.RowsAffected() == 0 {
		err = repository.ErrNotFound
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now()

	insertQuery, insertArgs, err := squirrel.Insert("transacoes").
		Columns("tipo", "data", "valor", "motivo", "professor_id", "aluno_id").
		Values(models.KindSend, now, amount, reason, professorID, studentID).
		Values(models.KindCredit, now, amount, reason, professorID, studentID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err = tx.Exec(ctx, insertQuery, insertArgs...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
