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

func (s *Storage) SaveCompany(ctx context.Context, c models.Company) (int64, error) {
	const op = "storage.Postgres.SaveCompany"

	sql, args, err := squirrel.Insert("empresas").
		Columns("nome", "documento", "email", "login", "senha", "nome_fantasia", "cnpj").
		Values(c.Name, c.Document, c.Email, c.Login, c.Password, c.TradeName, c.CNPJ).
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

func (s *Storage) GetCompanyByID(ctx context.Context, id int64) (models.Company, error) {
	const op = "storage.Postgres.GetCompanyByID"

	sql, args, err := squirrel.Select("id", "nome", "documento", "email", "login", "nome_fantasia", "cnpj").
		From("empresas").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return models.Company{}, fmt.Errorf("%s: %w", op, err)
	}

	var c models.Company
	err = s.db.QueryRow(ctx, sql, args...).
		Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Login, &c.TradeName, &c.CNPJ)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Company{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return models.Company{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *Storage) ListCompanies(ctx context.Context) ([]models.Company, error) {
	const op = "storage.Postgres.ListCompanies"

	sql, args, err := squirrel.Select("id", "nome", "documento", "email", "login", "nome_fantasia", "cnpj").
		From("empresas").
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

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Login, &c.TradeName, &c.CNPJ); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		companies = append(companies, c)
	}

	return companies, nil
}

func (s *Storage) UpdateCompany(ctx context.Context, id int64, c models.Company) error {
	const op = "storage.Postgres.UpdateCompany"

	sql, args, err := squirrel.Update("empresas").
		Set("nome", c.Name).
		Set("documento", c.Document).
		Set("email", c.Email).
		Set("login", c.Login).
		Set("nome_fantasia", c.TradeName).
		Set("cnpj", c.CNPJ).
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

func (s *Storage) DeleteCompany(ctx context.Context, id int64) error {
	const op = "storage.Postgres.DeleteCompany"

	sql, args, err := squirrel.Delete("empresas").
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
