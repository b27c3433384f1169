package gateway

import (
	"context"
	"fmt"
	"net/http"

	"student-coin/internal/domain/dto"
	"student-coin/internal/ledger"
	"student-coin/internal/notify"
)

// Defaults applied when mapping sparse ledger records onto the backend's
// student shape.
const (
	defaultDocument = "000.000.000-00"
	defaultRG       = "00.000.000-0"
	defaultAddress  = "Endereço não informado"
	defaultCourse   = "Curso"
)

func studentFromLedger(st ledger.Student) dto.StudentDTO {
	out := dto.StudentDTO{
		ID:            st.ID,
		Name:          st.Name,
		Document:      st.Document,
		Email:         st.Email,
		Login:         st.Email,
		RG:            st.RG,
		Address:       st.Address,
		Course:        st.Course,
		CoinBalance:   st.CoinBalance,
		InstitutionID: 1,
	}

	if out.Document == "" {
		out.Document = defaultDocument
	}
	if out.RG == "" {
		out.RG = defaultRG
	}
	if out.Address == "" {
		out.Address = defaultAddress
	}
	if out.Course == "" {
		out.Course = defaultCourse
	}

	return out
}

func (c *Client) ListStudents(ctx context.Context) ([]dto.StudentDTO, error) {
	var out []dto.StudentDTO
	err := c.do(ctx, http.MethodGet, "/api/alunos", nil, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return nil, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "ListStudents")

	students := c.store.ListStudents()
	out = make([]dto.StudentDTO, 0, len(students))
	for _, st := range students {
		out = append(out, studentFromLedger(st))
	}

	return out, nil
}

func (c *Client) GetStudent(ctx context.Context, id int64) (dto.StudentDTO, error) {
	var out dto.StudentDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/alunos/%d", id), nil, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.StudentDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "GetStudent")

	st, lerr := c.store.GetStudent(id)
	if lerr != nil {
		return dto.StudentDTO{}, lerr
	}

	return studentFromLedger(st), nil
}

func (c *Client) CreateStudent(ctx context.Context, in dto.StudentDTO) (dto.StudentDTO, error) {
	var out dto.StudentDTO
	err := c.do(ctx, http.MethodPost, "/api/alunos", in, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.StudentDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "CreateStudent")

	st, lerr := c.store.CreateStudent(ledger.Student{
		Name:        in.Name,
		Email:       in.Email,
		Document:    in.Document,
		RG:          in.RG,
		Course:      in.Course,
		Address:     in.Address,
		CoinBalance: in.CoinBalance,
	})
	if lerr != nil {
		return dto.StudentDTO{}, lerr
	}

	return studentFromLedger(st), nil
}

// UpdateStudent and DeleteStudent are network-only: the demo ledger keeps its
// seed student untouched.
func (c *Client) UpdateStudent(ctx context.Context, id int64, in dto.StudentDTO) (dto.StudentDTO, error) {
	var out dto.StudentDTO
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/alunos/%d", id), in, &out); err != nil {
		return dto.StudentDTO{}, err
	}

	return out, nil
}

func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/alunos/%d", id), nil, nil)
}

// AddCoins credits a student without naming a professor. The fallback records
// the transfer on behalf of the demo professor and queues the transfer
// emails.
func (c *Client) AddCoins(ctx context.Context, id int64, amount int) error {
	var out string
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/alunos/%d/adicionar-moedas?quantidade=%d", id, amount), nil, &out)
	if err == nil {
		return nil
	}
	if !fallbackEligible(err) {
		return err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "AddCoins")

	const reason = "Reconhecimento (demo)"

	prof, _ := c.store.FindUserByLogin("prof@uni.br")
	if lerr := c.store.SendCoins(prof.ID, id, amount, reason); lerr != nil {
		return lerr
	}

	if st, lerr := c.store.GetStudent(id); lerr == nil {
		c.dispatcher.EnqueueCoinTransfer(notify.CoinTransferEvent{
			ProfessorName:  prof.Name,
			ProfessorEmail: prof.Email,
			StudentName:    st.Name,
			StudentEmail:   st.Email,
			Amount:         amount,
			Reason:         reason,
		})
	}

	return nil
}

// SendCoins is the professor-initiated transfer. On the network path the
// backend records both ledger entries and sends nothing; the emails are
// queued here either way.
func (c *Client) SendCoins(ctx context.Context, professorID, studentID int64, amount int, reason string) error {
	in := dto.SendCoinsRequest{StudentID: studentID, Amount: amount, Reason: reason}

	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/professores/%d/enviar-moedas", professorID), in, nil)
	if err != nil {
		if !fallbackEligible(err) {
			return err
		}

		c.log.Debug("Backend unreachable, using local ledger", "op", "SendCoins")

		if lerr := c.store.SendCoins(professorID, studentID, amount, reason); lerr != nil {
			return lerr
		}
	}

	prof, _ := c.store.GetProfessor(professorID)
	if st, lerr := c.store.GetStudent(studentID); lerr == nil {
		c.dispatcher.EnqueueCoinTransfer(notify.CoinTransferEvent{
			ProfessorName:  prof.Name,
			ProfessorEmail: prof.Email,
			StudentName:    st.Name,
			StudentEmail:   st.Email,
			Amount:         amount,
			Reason:         reason,
		})
	}

	return nil
}

// DebitCoins is the raw balance debit. Network-only aside from recording a
// redeem entry in the demo ledger, mirroring the original page behavior.
func (c *Client) DebitCoins(ctx context.Context, id int64, amount int) error {
	var out string
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/alunos/%d/debitar-moedas?quantidade=%d", id, amount), nil, &out)
	if err == nil || !fallbackEligible(err) {
		return err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "DebitCoins")

	return c.store.DebitCoins(id, amount)
}
