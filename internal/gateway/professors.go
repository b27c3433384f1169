package gateway

import (
	"context"
	"fmt"
	"net/http"

	"student-coin/internal/domain/dto"
)

func (c *Client) CreateProfessor(ctx context.Context, in dto.ProfessorDTO) (dto.ProfessorDTO, error) {
	var out dto.ProfessorDTO
	err := c.do(ctx, http.MethodPost, "/api/professores", in, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.ProfessorDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "CreateProfessor")

	user, lerr := c.store.CreateProfessor(in.Name, in.Email, in.Login, in.Password)
	if lerr != nil {
		return dto.ProfessorDTO{}, lerr
	}

	return dto.ProfessorDTO{
		ID:            user.ID,
		Name:          user.Name,
		CPF:           in.CPF,
		Department:    in.Department,
		Email:         user.Email,
		Login:         user.Login,
		InstitutionID: in.InstitutionID,
	}, nil
}

func (c *Client) GetProfessor(ctx context.Context, id int64) (dto.ProfessorDTO, error) {
	var out dto.ProfessorDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/professores/%d", id), nil, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.ProfessorDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "GetProfessor")

	user, lerr := c.store.GetProfessor(id)
	if lerr != nil {
		return dto.ProfessorDTO{}, lerr
	}

	return dto.ProfessorDTO{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Login:         user.Login,
		InstitutionID: 1,
	}, nil
}
