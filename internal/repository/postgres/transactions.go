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

func transactionSelect() squirrel.SelectBuilder {
	return squirrel.Select(
		"t.id", "t.tipo", "t.data", "t.valor", "COALESCE(t.motivo, '')",
		"COALESCE(t.professor_id, 0)", "COALESCE(t.aluno_id, 0)", "COALESCE(a.nome, '')").
		From("transacoes t").
		LeftJoin("alunos a ON t.aluno_id = a.id")
}

func scanTransactions(rows pgx.Rows) ([]dto.TransactionRecord, error) {
	defer rows.Close()

	var records []dto.TransactionRecord
	for rows.Next() {
		rec, err := scanTransactionRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func scanTransactionRow(row pgx.Row) (dto.TransactionRecord, error) {
	var rec dto.TransactionRecord
	var date time.Time
	err := row.Scan(&rec.ID, &rec.Kind, &date, &rec.Amount, &rec.Reason,
		&rec.ProfessorID, &rec.StudentID, &rec.DestUserName)
	if err != nil {
		return dto.TransactionRecord{}, err
	}
	rec.Date = date.Format(time.RFC3339)
	rec.DestUserID = rec.StudentID
	return rec, nil
}

func (s *Storage) ListTransactions(ctx context.Context) ([]dto.TransactionRecord, error) {
	const op = "storage.Postgres.ListTransactions"

	sql, args, err := transactionSelect().
		OrderBy("t.data DESC", "t.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records, err := scanTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) TransactionsByStudent(ctx context.Context, studentID int64) ([]dto.TransactionRecord, error) {
	const op = "storage.Postgres.TransactionsByStudent"

	sql, args, err := transactionSelect().
		Where(squirrel.Eq{"t.aluno_id": studentID}).
		Where(squirrel.Eq{"t.tipo": []string{models.KindCredit, models.KindRedeem}}).
		OrderBy("t.data DESC", "t.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records, err := scanTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) TransactionsByKind(ctx context.Context, kind string) ([]dto.TransactionRecord, error) {
	const op = "storage.Postgres.TransactionsByKind"

	sql, args, err := transactionSelect().
		Where(squirrel.Eq{"t.tipo": kind}).
		OrderBy("t.data DESC", "t.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records, err := scanTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) TransactionsByProfessor(ctx context.Context, professorID int64) ([]dto.TransactionRecord, error) {
	const op = "storage.Postgres.TransactionsByProfessor"

	sql, args, err := transactionSelect().
		Where(squirrel.Eq{"t.professor_id": professorID, "t.tipo": models.KindSend}).
		OrderBy("t.data DESC", "t.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records, err := scanTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *Storage) GetTransaction(ctx context.Context, id int64) (dto.TransactionRecord, error) {
	const op = "storage.Postgres.GetTransaction"

	sql, args, err := transactionSelect().
		Where(squirrel.Eq{"t.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return dto.TransactionRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	rec, err := scanTransactionRow(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dto.TransactionRecord{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
		}
		return dto.TransactionRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}
