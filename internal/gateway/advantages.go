package gateway

import (
	"context"
	"fmt"
	"net/http"

	"student-coin/internal/domain/dto"
	"student-coin/internal/ledger"
	"student-coin/internal/notify"
)

func advantageFromLedger(a ledger.Advantage) dto.AdvantageDTO {
	return dto.AdvantageDTO{
		ID:          a.ID,
		Description: a.Description,
		Photo:       a.Photo,
		CoinCost:    a.CoinCost,
		CompanyID:   a.CompanyID,
		CompanyName: a.CompanyName,
	}
}

func (c *Client) ListAdvantages(ctx context.Context, page PageRequest) (dto.PageResponse[dto.AdvantageDTO], error) {
	var out dto.PageResponse[dto.AdvantageDTO]
	err := c.do(ctx, http.MethodGet, "/api/vantagens"+page.query(), nil, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.PageResponse[dto.AdvantageDTO]{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "ListAdvantages")

	all := c.store.ListAdvantages()
	items := make([]dto.AdvantageDTO, 0, len(all))
	for _, a := range all {
		items = append(items, advantageFromLedger(a))
	}

	return paginate(items, page), nil
}

func (c *Client) ListCompanyAdvantages(ctx context.Context, companyID int64, page PageRequest) (dto.PageResponse[dto.AdvantageDTO], error) {
	var out dto.PageResponse[dto.AdvantageDTO]
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/empresas/%d/vantagens%s", companyID, page.query()), nil, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.PageResponse[dto.AdvantageDTO]{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "ListCompanyAdvantages")

	all := c.store.ListCompanyAdvantages(companyID)
	items := make([]dto.AdvantageDTO, 0, len(all))
	for _, a := range all {
		items = append(items, advantageFromLedger(a))
	}

	return paginate(items, page), nil
}

func (c *Client) GetAdvantage(ctx context.Context, id int64) (dto.AdvantageDTO, error) {
	var out dto.AdvantageDTO
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/vantagens/%d", id), nil, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.AdvantageDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "GetAdvantage")

	a, lerr := c.store.GetAdvantage(id)
	if lerr != nil {
		return dto.AdvantageDTO{}, lerr
	}

	return advantageFromLedger(a), nil
}

func (c *Client) CreateAdvantage(ctx context.Context, companyID int64, in dto.AdvantageDTO) (dto.AdvantageDTO, error) {
	var out dto.AdvantageDTO
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/empresas/%d/vantagens", companyID), in, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.AdvantageDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "CreateAdvantage")

	a, lerr := c.store.CreateAdvantage(companyID, ledger.Advantage{
		Description: in.Description,
		Photo:       in.Photo,
		CoinCost:    in.CoinCost,
		CompanyName: in.CompanyName,
	})
	if lerr != nil {
		return dto.AdvantageDTO{}, lerr
	}

	return advantageFromLedger(a), nil
}

func (c *Client) UpdateAdvantage(ctx context.Context, companyID, id int64, in dto.AdvantageDTO) (dto.AdvantageDTO, error) {
	var out dto.AdvantageDTO
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/empresas/%d/vantagens/%d", companyID, id), in, &out)
	if err == nil {
		return out, nil
	}
	if !fallbackEligible(err) {
		return dto.AdvantageDTO{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "UpdateAdvantage")

	a, lerr := c.store.UpdateAdvantage(id, ledger.Advantage{
		Description: in.Description,
		Photo:       in.Photo,
		CoinCost:    in.CoinCost,
		CompanyID:   companyID,
		CompanyName: in.CompanyName,
	})
	if lerr != nil {
		return dto.AdvantageDTO{}, lerr
	}

	return advantageFromLedger(a), nil
}

func (c *Client) DeleteAdvantage(ctx context.Context, companyID, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/empresas/%d/vantagens/%d", companyID, id), nil, nil)
	if err == nil || !fallbackEligible(err) {
		return err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "DeleteAdvantage")

	return c.store.DeleteAdvantage(id)
}

// Redeem exchanges coins for an advantage and returns the coupon. Both paths
// queue the redemption emails; EmailSent reports only that the queueing
// happened, actual delivery is asynchronous and best-effort.
func (c *Client) Redeem(ctx context.Context, advantageID, studentID int64) (dto.RedemptionResponse, error) {
	var out dto.RedemptionResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/vantagens/%d/resgatar?alunoId=%d", advantageID, studentID), nil, &out)
	if err != nil {
		if !fallbackEligible(err) {
			return dto.RedemptionResponse{}, err
		}

		c.log.Debug("Backend unreachable, using local ledger", "op", "Redeem")

		out, err = c.store.Redeem(advantageID, studentID)
		if err != nil {
			return dto.RedemptionResponse{}, err
		}
	}

	c.dispatcher.EnqueueRedemption(notify.RedemptionEvent{
		StudentName:          out.StudentName,
		StudentEmail:         out.StudentEmail,
		CompanyName:          out.CompanyName,
		CompanyEmail:         out.CompanyEmail,
		AdvantageDescription: out.AdvantageDescription,
		CouponCode:           out.CouponCode,
		CoinCost:             out.CoinCost,
	})
	out.EmailSent = c.dispatcher.Configured()

	return out, nil
}
