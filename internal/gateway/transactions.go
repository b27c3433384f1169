package gateway

import (
	"context"
	"fmt"
	"net/http"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
	"student-coin/internal/ledger"
)

// enrichNames fills blank counterpart names with a student lookup, falling
// back to a synthetic label when the lookup misses too. Id 1 is the seed
// student and never triggers a lookup.
func (c *Client) enrichNames(ctx context.Context, txs []dto.TransactionDTO) []dto.TransactionDTO {
	for i := range txs {
		if txs[i].User.Name != "" {
			continue
		}

		id := txs[i].User.ID
		if id != 1 {
			if st, err := c.GetStudent(ctx, id); err == nil && st.Name != "" {
				txs[i].User.Name = st.Name
				continue
			}
		}

		txs[i].User.Name = fmt.Sprintf("Student #%d", id)
	}

	return txs
}

func transactionFromLedger(t ledger.Transaction) dto.TransactionDTO {
	userID := t.StudentID
	if userID == 0 {
		userID = t.ProfessorID
	}
	if userID == 0 {
		userID = 1
	}

	reason := t.Reason
	if reason == "" {
		reason = t.Description
	}

	return dto.TransactionDTO{
		ID:     t.ID,
		User:   dto.TransactionUser{ID: userID},
		Date:   t.Date,
		Amount: t.Amount,
		Kind:   t.Kind,
		Reason: reason,
	}
}

// ledgerKind maps the backend's transaction kinds onto the demo ledger's.
func ledgerKind(kind string) string {
	switch kind {
	case models.KindSend:
		return ledger.KindProfessorSend
	case models.KindCredit:
		return ledger.KindStudentReceive
	case models.KindRedeem:
		return ledger.KindStudentRedeem
	default:
		return kind
	}
}

func (c *Client) fetchTransactions(ctx context.Context, path string) ([]dto.TransactionDTO, error) {
	var raw []wireTransaction
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	out := make([]dto.TransactionDTO, 0, len(raw))
	for _, w := range raw {
		out = append(out, w.normalize())
	}

	return c.enrichNames(ctx, out), nil
}

func (c *Client) ledgerTransactions(ctx context.Context, txs []ledger.Transaction) []dto.TransactionDTO {
	out := make([]dto.TransactionDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionFromLedger(t))
	}

	return c.enrichNames(ctx, out)
}

func (c *Client) ListTransactions(ctx context.Context) ([]dto.TransactionDTO, error) {
	out, err := c.fetchTransactions(ctx, "/api/transacoes")
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return nil, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "ListTransactions")

	return c.ledgerTransactions(ctx, c.store.ListTransactions()), nil
}

func (c *Client) TransactionsByStudent(ctx context.Context, studentID int64) ([]dto.TransactionDTO, error) {
	out, err := c.fetchTransactions(ctx, fmt.Sprintf("/api/transacoes/aluno/%d", studentID))
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return nil, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "TransactionsByStudent")

	return c.ledgerTransactions(ctx, c.store.TransactionsByStudent(studentID)), nil
}

func (c *Client) TransactionsByKind(ctx context.Context, kind string) ([]dto.TransactionDTO, error) {
	out, err := c.fetchTransactions(ctx, "/api/transacoes/tipo/"+kind)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return nil, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "TransactionsByKind")

	return c.ledgerTransactions(ctx, c.store.TransactionsByKind(ledgerKind(kind))), nil
}

// ProfessorHistory lists the coin grants one professor has sent.
func (c *Client) ProfessorHistory(ctx context.Context, professorID int64) ([]dto.TransactionDTO, error) {
	out, err := c.fetchTransactions(ctx, fmt.Sprintf("/api/transacoes/professor/%d", professorID))
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return nil, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "ProfessorHistory")

	return c.ledgerTransactions(ctx, c.store.TransactionsByProfessor(professorID)), nil
}

func (c *Client) GetTransaction(ctx context.Context, id int64) (dto.TransactionDTO, error) {
	var raw wireTransaction
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/transacoes/detalhe/%d", id), nil, &raw)
	if err == nil {
		out := c.enrichNames(ctx, []dto.TransactionDTO{raw.normalize()})
		return out[0], nil
	}
	if !fallbackEligible(err) {
		return dto.TransactionDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "GetTransaction")

	t, lerr := c.store.GetTransaction(id)
	if lerr != nil {
		return dto.TransactionDTO{}, lerr
	}

	out := c.ledgerTransactions(ctx, []ledger.Transaction{t})

	return out[0], nil
}
