package gateway

import (
	"context"
	"fmt"
	"net/http"

	"student-coin/internal/domain/dto"
)

// Company operations are network-only: the demo ledger carries no company
// records beyond what advantages denormalize.

func (c *Client) ListCompanies(ctx context.Context) ([]dto.CompanyDTO, error) {
	var out []dto.CompanyDTO
	if err := c.do(ctx, http.MethodGet, "/api/empresas", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetCompany(ctx context.Context, id int64) (dto.CompanyDTO, error) {
	var out dto.CompanyDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/empresas/%d", id), nil, &out); err != nil {
		return dto.CompanyDTO{}, err
	}

	return out, nil
}

func (c *Client) CreateCompany(ctx context.Context, in dto.CompanyDTO) (dto.CompanyDTO, error) {
	var out dto.CompanyDTO
	if err := c.do(ctx, http.MethodPost, "/api/empresas", in, &out); err != nil {
		return dto.CompanyDTO{}, err
	}

	return out, nil
}

func (c *Client) UpdateCompany(ctx context.Context, id int64, in dto.CompanyDTO) (dto.CompanyDTO, error) {
	var out dto.CompanyDTO
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/empresas/%d", id), in, &out); err != nil {
		return dto.CompanyDTO{}, err
	}

	return out, nil
}

func (c *Client) DeleteCompany(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/empresas/%d", id), nil, nil)
}
