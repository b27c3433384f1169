package ledger

import (
	"fmt"

	"student-coin/internal/repository"
)

func (s *Store) ListStudents() []Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Student, len(s.db.Students))
	copy(out, s.db.Students)

	return out
}

func (s *Store) GetStudent(id int64) (Student, error) {
	const op = "ledger.GetStudent"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.db.Students {
		if st.ID == id {
			return st, nil
		}
	}

	return Student{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
}

func (s *Store) CreateStudent(st Student) (Student, error) {
	const op = "ledger.CreateStudent"

	s.mu.Lock()
	defer s.mu.Unlock()

	st.ID = nextStudentID(s.db)
	s.db.Students = append(s.db.Students, st)

	if err := s.flushLocked(); err != nil {
		return Student{}, fmt.Errorf("%s: %w", op, err)
	}

	return st, nil
}
