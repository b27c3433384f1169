package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Store is the file-backed demo ledger used when the backend is unreachable.
// One JSON document holds users, students, advantages and transactions; every
// mutating operation is a full read-modify-write under the mutex. That is
// enough for a single demo client and deliberately nothing more.
type Store struct {
	mu   sync.Mutex
	log  *slog.Logger
	path string
	db   *blob
}

// Open loads the ledger at path, creating and seeding it when the file is
// missing. A malformed file is replaced with seeded defaults without
// surfacing an error.
func Open(path string, log *slog.Logger) (*Store, error) {
	const op = "ledger.Open"

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	s := &Store{
		log:  log,
		path: path,
	}

	s.load()
	ensureSeeds(s.db)

	if err := s.flushLocked(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.db = defaultBlob()
		return
	}

	var db blob
	if err := json.Unmarshal(raw, &db); err != nil {
		// corrupt demo data is recovered silently
		s.log.Debug("Ledger file malformed, reseeding", slog.String("path", s.path))
		s.db = defaultBlob()
		return
	}

	s.db = &db
}

func (s *Store) flushLocked() error {
	raw, err := json.MarshalIndent(s.db, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, raw, 0o600)
}

// Reset discards everything and reseeds the defaults.
func (s *Store) Reset() error {
	const op = "ledger.Reset"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.db = defaultBlob()

	if err := s.flushLocked(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func defaultBlob() *blob {
	return &blob{
		Users: []User{
			{ID: 1, Role: RoleStudent, Name: "Ana Lima", Email: "ana@uni.br", Login: "ana@uni.br", Password: "demo"},
			{ID: 2, Role: RoleProfessor, Name: "Carlos Souza", Email: "carlos@uni.br", Login: "carlos@uni.br", Password: "demo"},
			{ID: 3, Role: RoleCompany, Name: "Empresa Ex", Email: "contato@empresa.com", Login: "contato@empresa.com", Password: "demo"},
			{ID: 4, Role: RoleProfessor, Name: "Professor Demo", Email: "prof@uni.br", Login: "prof@uni.br", Password: "demo"},
		},
		Students: []Student{
			seedStudent(),
		},
		Advantages:   []Advantage{},
		Transactions: []Transaction{},
	}
}

func seedStudent() Student {
	return Student{
		ID:          1,
		Name:        "Ana Lima",
		Email:       "ana@uni.br",
		Document:    "000.000.000-00",
		RG:          "00.000.000-0",
		Institution: "Universidade X",
		Course:      "Engenharia",
		Address:     "Rua Demo, 1",
		CoinBalance: 1250,
	}
}

// ensureSeeds repairs a blob that survived from an earlier demo run: the demo
// student and professor users, and the demo student record, are appended when
// missing. Calling it twice changes nothing.
func ensureSeeds(db *blob) {
	ensureUser := func(role, name, email, login string) {
		for _, u := range db.Users {
			if u.Login == login || u.Email == email {
				return
			}
		}
		db.Users = append(db.Users, User{
			ID:       nextUserID(db),
			Role:     role,
			Name:     name,
			Email:    email,
			Login:    login,
			Password: "demo",
		})
	}

	ensureUser(RoleStudent, "Ana Lima", "ana@uni.br", "ana@uni.br")
	ensureUser(RoleProfessor, "Professor Demo", "prof@uni.br", "prof@uni.br")

	for _, st := range db.Students {
		if st.Email == "ana@uni.br" {
			return
		}
	}

	seed := seedStudent()
	seed.ID = nextStudentID(db)
	db.Students = append(db.Students, seed)
}

func nextUserID(db *blob) int64 {
	var max int64
	for _, u := range db.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func nextStudentID(db *blob) int64 {
	var max int64
	for _, st := range db.Students {
		if st.ID > max {
			max = st.ID
		}
	}
	return max + 1
}

func nextAdvantageID(db *blob) int64 {
	var max int64
	for _, a := range db.Advantages {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func nextTransactionID(db *blob) int64 {
	var max int64
	for _, t := range db.Transactions {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
