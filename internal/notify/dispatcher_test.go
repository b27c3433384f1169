package notify

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-coin/internal/config"
)

// capture records every EmailJS payload the dispatcher posts.
type capture struct {
	mu       sync.Mutex
	payloads []map[string]any
	failOnce bool
}

func (c *capture) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		var payload map[string]any
		_ = json.Unmarshal(raw, &payload)

		c.mu.Lock()
		c.payloads = append(c.payloads, payload)
		fail := c.failOnce
		c.failOnce = false
		c.mu.Unlock()

		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (c *capture) templateIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.payloads))
	for _, p := range c.payloads {
		id, _ := p["template_id"].(string)
		ids = append(ids, id)
	}
	return ids
}

func configuredEmail() config.EmailConfig {
	return config.EmailConfig{
		ServiceID:                 "service_demo",
		PublicKey:                 "public_demo",
		TemplateTransferAdmin:     "tpl_admin",
		TemplateTransferStudent:   "tpl_student",
		TemplateTransferProfessor: "tpl_professor",
		TemplateRedeemStudent:     "tpl_redeem_student",
		TemplateRedeemCompany:     "tpl_redeem_company",
	}
}

func transferEvent() CoinTransferEvent {
	return CoinTransferEvent{
		ProfessorName:  "Professor Demo",
		ProfessorEmail: "prof@uni.br",
		StudentName:    "Ana Lima",
		StudentEmail:   "ana@uni.br",
		Amount:         100,
		Reason:         "Projeto",
	}
}

func TestDispatcher_UnconfiguredIsNoOp(t *testing.T) {
	// Arrange
	captured := &capture{}
	server := httptest.NewServer(captured.handler())
	defer server.Close()

	d := NewDispatcher(slog.Default(), config.EmailConfig{}, WithEndpoint(server.URL))

	// Act
	d.EnqueueCoinTransfer(transferEvent())
	d.Close()

	// Assert
	assert.Empty(t, captured.payloads)
}

func TestDispatcher_TransferSendsOnePerTemplate(t *testing.T) {
	// Arrange
	captured := &capture{}
	server := httptest.NewServer(captured.handler())
	defer server.Close()

	d := NewDispatcher(slog.Default(), configuredEmail(), WithEndpoint(server.URL))

	// Act
	d.EnqueueCoinTransfer(transferEvent())
	d.Close()

	// Assert
	assert.ElementsMatch(t, []string{"tpl_admin", "tpl_student", "tpl_professor"}, captured.templateIDs())
}

func TestDispatcher_TransferSkipsProfessorTemplateWithoutEmail(t *testing.T) {
	// Arrange
	captured := &capture{}
	server := httptest.NewServer(captured.handler())
	defer server.Close()

	d := NewDispatcher(slog.Default(), configuredEmail(), WithEndpoint(server.URL))

	ev := transferEvent()
	ev.ProfessorEmail = ""

	// Act
	d.EnqueueCoinTransfer(ev)
	d.Close()

	// Assert
	assert.ElementsMatch(t, []string{"tpl_admin", "tpl_student"}, captured.templateIDs())
}

func TestDispatcher_RedemptionSendsStudentAndCompany(t *testing.T) {
	// Arrange
	captured := &capture{}
	server := httptest.NewServer(captured.handler())
	defer server.Close()

	d := NewDispatcher(slog.Default(), configuredEmail(), WithEndpoint(server.URL))

	// Act
	d.EnqueueRedemption(RedemptionEvent{
		StudentName:          "Ana Lima",
		StudentEmail:         "ana@uni.br",
		CompanyName:          "Empresa Ex",
		CompanyEmail:         "contato@empresa.com",
		AdvantageDescription: "Meia-entrada no cinema",
		CouponCode:           "COUPON-1-1-1-1",
		CoinCost:             500,
	})
	d.Close()

	// Assert
	require.ElementsMatch(t, []string{"tpl_redeem_student", "tpl_redeem_company"}, captured.templateIDs())

	params, ok := captured.payloads[0]["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "COUPON-1-1-1-1", params["cupom"])
	assert.Equal(t, "service_demo", captured.payloads[0]["service_id"])
	assert.Equal(t, "public_demo", captured.payloads[0]["user_id"])
}

func TestDispatcher_OneFailureDoesNotBlockOthers(t *testing.T) {
	// Arrange
	captured := &capture{failOnce: true}
	server := httptest.NewServer(captured.handler())
	defer server.Close()

	d := NewDispatcher(slog.Default(), configuredEmail(), WithEndpoint(server.URL))

	// Act
	d.EnqueueCoinTransfer(transferEvent())
	d.Close()

	// Assert: the failed first send was still followed by the remaining two
	assert.Len(t, captured.payloads, 3)
}

func TestDispatcher_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	// Arrange: no worker progress while the queue fills up
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-blocked
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := NewDispatcher(slog.Default(), configuredEmail(), WithEndpoint(server.URL), WithQueueSize(1))

	// Act: enqueue more events than the queue can hold; must return promptly
	for i := 0; i < 10; i++ {
		d.EnqueueCoinTransfer(transferEvent())
	}

	// Assert: nothing deadlocked; release the worker and drain
	close(blocked)
	d.Close()
}
