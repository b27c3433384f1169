package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"student-coin/internal/ledger"
	"student-coin/internal/notify"
	"student-coin/internal/repository"
)

// ErrBackendUnavailable marks a transport failure or a 5xx answer. It is the
// only class of failure that triggers the local ledger fallback; definitive
// 4xx answers are surfaced as they are.
var ErrBackendUnavailable = errors.New("backend unavailable")

// Client talks to the campus backend and falls back to the local demo ledger
// when the backend cannot be reached. Pages built on it never learn which
// path served them, except through the data itself.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *ledger.Store
	dispatcher *notify.Dispatcher
	log        *slog.Logger
	token      string
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, store *ledger.Store, dispatcher *notify.Dispatcher, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		store:      store,
		dispatcher: dispatcher,
		log:        log,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken installs the bearer token sent on subsequent requests. Login sets
// it automatically; an empty string clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// fallbackEligible reports whether the error came from an unreachable
// backend rather than a definitive answer.
func fallbackEligible(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}

// do issues one request and decodes the JSON answer into out when out is
// non-nil. Transport failures and 5xx answers are wrapped with
// ErrBackendUnavailable; 4xx answers are mapped onto the shared sentinels
// with the response body as the message.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	const op = "gateway.do"

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%s: %w: status %d", op, ErrBackendUnavailable, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return failureError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// some endpoints answer plain text ("OK") on success
		if _, ok := out.(*string); ok {
			*(out.(*string)) = string(raw)
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func failureError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = fmt.Sprintf("API Error: %d", status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, repository.ErrNotFound)
	case strings.Contains(strings.ToLower(msg), "saldo insuficiente"):
		return fmt.Errorf("%s: %w", msg, repository.ErrInsufficientBalance)
	default:
		return errors.New(msg)
	}
}
