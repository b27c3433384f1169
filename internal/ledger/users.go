package ledger

import (
	"fmt"
	"time"

	"student-coin/internal/domain/dto"
	"student-coin/internal/repository"
)

// Login matches the identifier against login or email. Any password is
// accepted: the demo ledger never reaches real credentials, only the
// backend does.
func (s *Store) Login(identifier, _ string) (dto.LoginResponse, error) {
	const op = "ledger.Login"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.db.Users {
		if u.Login == identifier || u.Email == identifier {
			return dto.LoginResponse{
				ID:    u.ID,
				Name:  u.Name,
				Email: u.Email,
				Login: u.Login,
				Role:  u.Role,
			}, nil
		}
	}

	return dto.LoginResponse{}, fmt.Errorf("%s: %w", op, repository.ErrUserNotFound)
}

// FindUserByLogin reports the user matching the identifier by login or email.
func (s *Store) FindUserByLogin(identifier string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.db.Users {
		if u.Login == identifier || u.Email == identifier {
			return u, true
		}
	}

	return User{}, false
}

// CreateProfessor registers a professor user. A duplicate login or email gets
// a timestamp suffix on the login instead of failing, keeping the demo flow
// unblocked.
func (s *Store) CreateProfessor(name, email, login, password string) (User, error) {
	const op = "ledger.CreateProfessor"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.db.Users {
		if u.Login == login || u.Email == email {
			login = fmt.Sprintf("%s.%d", login, time.Now().UnixMilli())
			break
		}
	}

	user := User{
		ID:       nextUserID(s.db),
		Role:     RoleProfessor,
		Name:     name,
		Email:    email,
		Login:    login,
		Password: password,
	}
	s.db.Users = append(s.db.Users, user)

	if err := s.flushLocked(); err != nil {
		return User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// GetProfessor reports the professor user with the given id.
func (s *Store) GetProfessor(id int64) (User, error) {
	const op = "ledger.GetProfessor"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.db.Users {
		if u.ID == id && u.Role == RoleProfessor {
			return u, nil
		}
	}

	return User{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
}
