package ledger

import (
	"fmt"
	"math/rand"
	"time"

	"student-coin/internal/domain/dto"
	"student-coin/internal/repository"
)

// SendCoins credits the student and appends the two sides of the transfer as
// linked transactions sharing the same date and amount. A negative amount is
// clamped to zero.
func (s *Store) SendCoins(professorID, studentID int64, amount int, reason string) error {
	const op = "ledger.SendCoins"

	if amount < 0 {
		amount = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	studentName := fmt.Sprintf("aluno %d", studentID)
	for i := range s.db.Students {
		if s.db.Students[i].ID == studentID {
			s.db.Students[i].CoinBalance += amount
			studentName = s.db.Students[i].Name
			break
		}
	}

	id := nextTransactionID(s.db)
	today := time.Now().Format("2006-01-02")

	s.db.Transactions = append(s.db.Transactions,
		Transaction{
			ID:          id,
			Kind:        KindProfessorSend,
			Date:        today,
			ProfessorID: professorID,
			StudentID:   studentID,
			Amount:      amount,
			Reason:      reason,
			Description: "Envio para " + studentName,
		},
		Transaction{
			ID:          id + 1,
			Kind:        KindStudentReceive,
			Date:        today,
			ProfessorID: professorID,
			StudentID:   studentID,
			Amount:      amount,
			Reason:      reason,
			Description: "Reconhecimento do professor",
		},
	)

	if err := s.flushLocked(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DebitCoins removes coins from a student and records the debit as a redeem
// entry. A negative amount is clamped to zero. The balance may go negative:
// the raw debit carries no advantage cost to check against.
func (s *Store) DebitCoins(studentID int64, amount int) error {
	const op = "ledger.DebitCoins"

	if amount < 0 {
		amount = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.db.Students {
		if s.db.Students[i].ID == studentID {
			s.db.Students[i].CoinBalance -= amount
			break
		}
	}

	s.db.Transactions = append(s.db.Transactions, Transaction{
		ID:          nextTransactionID(s.db),
		Kind:        KindStudentRedeem,
		Date:        time.Now().Format("2006-01-02"),
		StudentID:   studentID,
		Amount:      amount,
		Description: "Resgate (demo)",
	})

	if err := s.flushLocked(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Redeem debits exactly the advantage's cost from the student, appends the
// redeem transaction and issues a coupon. The ledger is left untouched when
// the balance cannot cover the cost.
func (s *Store) Redeem(advantageID, studentID int64) (dto.RedemptionResponse, error) {
	const op = "ledger.Redeem"

	s.mu.Lock()
	defer s.mu.Unlock()

	var adv *Advantage
	for i := range s.db.Advantages {
		if s.db.Advantages[i].ID == advantageID {
			adv = &s.db.Advantages[i]
			break
		}
	}

	var student *Student
	for i := range s.db.Students {
		if s.db.Students[i].ID == studentID {
			student = &s.db.Students[i]
			break
		}
	}

	if adv == nil || student == nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	if student.CoinBalance < adv.CoinCost {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, repository.ErrInsufficientBalance)
	}

	now := time.Now()
	coupon := fmt.Sprintf("COUPON-%d-%d-%d-%d", advantageID, studentID, now.UnixMilli(), rand.Intn(10000))

	student.CoinBalance -= adv.CoinCost
	s.db.Transactions = append(s.db.Transactions, Transaction{
		ID:          nextTransactionID(s.db),
		Kind:        KindStudentRedeem,
		Date:        now.Format(time.RFC3339),
		StudentID:   studentID,
		Amount:      adv.CoinCost,
		Description: "Resgate: " + adv.Description,
	})

	if err := s.flushLocked(); err != nil {
		return dto.RedemptionResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	companyName := adv.CompanyName
	if companyName == "" {
		companyName = "Empresa"
	}

	return dto.RedemptionResponse{
		AdvantageID:          advantageID,
		AdvantageDescription: adv.Description,
		CoinCost:             adv.CoinCost,
		CouponCode:           coupon,
		RedeemedAt:           now.Format(time.RFC3339),
		NewBalance:           student.CoinBalance,
		StudentEmail:         student.Email,
		StudentName:          student.Name,
		CompanyName:          companyName,
		CompanyEmail:         "empresa@example.com",
	}, nil
}

func (s *Store) ListTransactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Transaction, len(s.db.Transactions))
	copy(out, s.db.Transactions)

	return out
}

// TransactionsByStudent reports the student's statement: what they received
// and what they redeemed.
func (s *Store) TransactionsByStudent(studentID int64) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Transaction
	for _, t := range s.db.Transactions {
		if t.StudentID == studentID && (t.Kind == KindStudentReceive || t.Kind == KindStudentRedeem) {
			out = append(out, t)
		}
	}

	return out
}

func (s *Store) TransactionsByProfessor(professorID int64) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Transaction
	for _, t := range s.db.Transactions {
		if t.ProfessorID == professorID && t.Kind == KindProfessorSend {
			out = append(out, t)
		}
	}

	return out
}

func (s *Store) TransactionsByKind(kind string) []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Transaction
	for _, t := range s.db.Transactions {
		if t.Kind == kind {
			out = append(out, t)
		}
	}

	return out
}

func (s *Store) GetTransaction(id int64) (Transaction, error) {
	const op = "ledger.GetTransaction"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.db.Transactions {
		if t.ID == id {
			return t, nil
		}
	}

	return Transaction{}, fmt.Errorf("%s: %w", op, repository.ErrNotFound)
}
