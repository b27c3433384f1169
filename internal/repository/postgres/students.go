package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"student-coin/internal/domain/models"
	"student-coin/internal/repository"
)

func (s *Storage) SaveStudent(ctx context.Context, st models.Student) (int64, error) {
	const op = "storage.Postgres.SaveStudent"

	sql, args, err := squirrel.Insert("alunos").
		Columns("nome", "documento", "email", "login", "senha", "rg", "endereco", "curso", "saldo_moedas", "instituicao_id").
		Values(st.Name, st.Document, st.Email, st.Login, st.Password, st.RG, st.Address, st.Course, st.CoinBalance, st.InstitutionID).
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

func (s *Storage) GetStudentByID(ctx context.Context, id int64) (models.Student, error) {
	const op = "storage.Postgres.GetStudentByID"

	sql, args, err := squirrel.Select("id", "nome", "documento", "email", "login", "rg", "endereco", "curso", "saldo_moedas", "instituicao_id").
		From("alunos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.Student{}, fmt.Errorf("%s: %w", op, err)
	}

	var st models.Student
	err = s.db.QueryRow(ctx, sql, args...).
		Scan(&st.ID, &st.Name, &st.Document, &st.Email, &st.Login, &st.RG, &st.Address, &st.Course, &st.CoinBalance, &st.InstitutionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Student{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return models.Student{}, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}

func (s *Storage) ListStudents(ctx context.Context) ([]models.Student, error) {
	const op = "storage.Postgres.ListStudents"

	sql, args, err := squirrel.Select("id", "nome", "documento", "email", "login", "rg", "endereco", "curso", "saldo_moedas", "instituicao_id").
		From("alunos").
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var st models.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Document, &st.Email, &st.Login, &st.RG, &st.Address, &st.Course, &st.CoinBalance, &st.InstitutionID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		students = append(students, st)
	}

	return students, nil
}

func (s *Storage) UpdateStudent(ctx context.Context, id int64, st models.Student) error {
	const op = "storage.Postgres.UpdateStudent"

	sql, args, err := squirrel.Update("alunos").
		Set("nome", st.Name).
		Set("documento", st.Document).
		Set("email", st.Email).
		Set("login", st.Login).
		Set("rg", st.RG).
		Set("endereco", st.Address).
		Set("curso", st.Course).
		Where(squirrel.Eq{"id": id}).
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

func (s *Storage) DeleteStudent(ctx context.Context, id int64) error {
	const op = "storage.Postgres.DeleteStudent"

	sql, args, err := squirrel.Delete("alunos").
		Where(squirrel.Eq{"id": id}).
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

func (s *Storage) AddCoins(ctx context.Context, id int64, amount int) (int, error) {
	const op = "storage.Postgres.AddCoins"

	sql, args, err := squirrel.Update("alunos").
		Set("saldo_moedas", squirrel.Expr("saldo_moedas + ?", amount)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING saldo_moedas").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var balance int
	err = s.db.QueryRow(ctx, sql, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}

func (s *Storage) DebitCoins(ctx context.Context, id int64, amount int) (int, error) {
	const op = "storage.Postgres.DebitCoins"

	sql, args, err := squirrel.Update("alunos").
		Set("saldo_moedas", squirrel.Expr("saldo_moedas - ?", amount)).
		Where(squirrel.Eq{"id": id}).
		Where("saldo_moedas >= ?", amount).
		Suffix("RETURNING saldo_moedas").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var balance int
	err = s.db.QueryRow(ctx, sql, args...).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// distinguish a missing student from a guarded balance miss
			if _, getErr := s.GetStudentByID(ctx, id); getErr != nil {
				return 0, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
			}
			return 0, fmt.Errorf("%s: %w", op, repository.ErrInsufficientBalance)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return balance, nil
}
