package ledger

import (
	"fmt"

	"student-coin/internal/repository"
)

func (s *Store) ListAdvantages() []Advantage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Advantage, len(s.db.Advantages))
	copy(out, s.db.Advantages)

	return out
}

// ListCompanyAdvantages reports the advantages published by one company.
// Records with no company id are treated as everyone's, matching the loose
// demo data the fallback may inherit.
func (s *Store) ListCompanyAdvantages(companyID int64) []Advantage {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Advantage
	for _, a := range s.db.Advantages {
		if a.CompanyID == 0 || a.CompanyID == companyID {
			out = append(out, a)
		}
	}

	return out
}

func (s *Store) GetAdvantage(id int64) (Advantage, error) {
	const op = "ledger.GetAdvantage"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.db.Advantages {
		if a.ID == id {
			return a, nil
		}
	}

	return Advantage{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
}

func (s *Store) CreateAdvantage(companyID int64, adv Advantage) (Advantage, error) {
	const op = "ledger.CreateAdvantage"

	s.mu.Lock()
	defer s.mu.Unlock()

	adv.ID = nextAdvantageID(s.db)
	adv.CompanyID = companyID
	s.db.Advantages = append(s.db.Advantages, adv)

	if err := s.flushLocked(); err != nil {
		return Advantage{}, fmt.Errorf("%s: %w", op, err)
	}

	return adv, nil
}

func (s *Store) UpdateAdvantage(id int64, adv Advantage) (Advantage, error) {
	const op = "ledger.UpdateAdvantage"

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.db.Advantages {
		if s.db.Advantages[i].ID != id {
			continue
		}

		adv.ID = id
		if adv.CompanyID == 0 {
			adv.CompanyID = s.db.Advantages[i].CompanyID
		}
		s.db.Advantages[i] = adv

		if err := s.flushLocked(); err != nil {
			return Advantage{}, fmt.Errorf("%s: %w", op, err)
		}

		return adv, nil
	}

	return Advantage{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
}

func (s *Store) DeleteAdvantage(id int64) error {
	const op = "ledger.DeleteAdvantage"

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.db.Advantages[:0]
	for _, a := range s.db.Advantages {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.db.Advantages = kept

	if err := s.flushLocked(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
