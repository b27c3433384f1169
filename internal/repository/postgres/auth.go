package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"student-coin/internal/domain/dto"
	"student-coin/internal/repository"
)

// account tables searched at login, in lookup order. Each exposes the same
// credential columns.
var accountTables = []struct {
	table string
	role  string
}{
	{"alunos", "aluno"},
	{"professores", "professor"},
	{"empresas", "empresa"},
}

// LoginUser resolves an account by login or email across the three account
// tables and returns its profile plus the stored password hash.
func (s *Storage) LoginUser(ctx context.Context, input string) (dto.LoginResponse, []byte, error) {
	const op = "storage.Postgres.LoginUser"

	for _, acc := range accountTables {
		sql, args, err := squirrel.Select("id", "nome", "email", "login", "senha").
			From(acc.table).
			Where(squirrel.Or{squirrel.Eq{"login": input}, squirrel.Eq{"email": input}}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return dto.LoginResponse{}, nil, fmt.Errorf("%s: %w", op, err)
		}

		var resp dto.LoginResponse
		var hash []byte
		err = s.db.QueryRow(ctx, sql, args...).
			Scan(&resp.ID, &resp.Name, &resp.Email, &resp.Login, &hash)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return dto.LoginResponse{}, nil, fmt.Errorf("%s: %w", op, err)
		}

		resp.Role = acc.role
		return resp, hash, nil
	}

	return dto.LoginResponse{}, nil, fmt.Errorf("%s: %w", op, repository.ErrUserNotFound)
}
