package gateway

import (
	"context"
	"net/http"

	"student-coin/internal/domain/dto"
)

// Login authenticates against the backend, falling back to the demo ledger
// when the backend is down. On the network path the returned token is
// installed on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, login, password string) (dto.LoginResponse, error) {
	var resp dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Login: login, Password: password}, &resp)
	if err == nil {
		c.SetToken(resp.Token)
		return resp, nil
	}
	if !fallbackEligible(err) {
		return dto.LoginResponse{}, err
	}

	c.log.Debug("Backend unreachable, using local ledger", "op", "Login")

	return c.store.Login(login, password)
}
