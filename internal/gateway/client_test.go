package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-coin/internal/config"
	"student-coin/internal/domain/dto"
	"student-coin/internal/ledger"
	"student-coin/internal/notify"
	"student-coin/internal/repository"
)

// deadBackend is an address nothing listens on.
const deadBackend = "http://127.0.0.1:1"

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	store, err := ledger.Open(filepath.Join(t.TempDir(), "ledger.json"), slog.Default())
	require.NoError(t, err)

	dispatcher := notify.NewDispatcher(slog.Default(), config.EmailConfig{})
	t.Cleanup(dispatcher.Close)

	return New(baseURL, store, dispatcher, slog.Default())
}

func TestListStudents_FallsBackOnTransportFailure(t *testing.T) {
	// Arrange
	client := newTestClient(t, deadBackend)

	// Act
	students, err := client.ListStudents(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ana Lima", students[0].Name)
	assert.Equal(t, "000.000.000-00", students[0].Document)
	assert.Equal(t, 1250, students[0].CoinBalance)
}

func TestListStudents_FallsBackOnServerError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	students, err := client.ListStudents(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Ana Lima", students[0].Name)
}

func TestGetStudent_DoesNotFallBackOnNotFound(t *testing.T) {
	// Arrange: the backend answered, so its 404 is definitive even though
	// the local ledger could have served the seed student.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "aluno não encontrado", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	_, err := client.GetStudent(context.Background(), 1)

	// Assert
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRedeem_DoesNotFallBackOnInsufficientBalance(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "saldo insuficiente", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	_, err := client.Redeem(context.Background(), 3, 1)

	// Assert
	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)
}

func TestLogin_NetworkPathInstallsToken(t *testing.T) {
	// Arrange
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":1,"nome":"Ana Lima","tipo":"aluno","token":"access-token"}`))
		case "/api/alunos":
			authHeader = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	session, err := client.Login(context.Background(), "ana@uni.br", "demo")
	require.NoError(t, err)
	_, err = client.ListStudents(context.Background())
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "Ana Lima", session.Name)
	assert.Equal(t, "Bearer access-token", authHeader)
}

func TestLogin_FallsBackToLedger(t *testing.T) {
	// Arrange
	client := newTestClient(t, deadBackend)

	// Act
	session, err := client.Login(context.Background(), "prof@uni.br", "anything")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Professor Demo", session.Name)
	assert.Equal(t, "professor", session.Role)
	assert.Empty(t, session.Token)
}

func TestRedeem_FallbackEndToEnd(t *testing.T) {
	// Arrange
	client := newTestClient(t, deadBackend)

	adv, err := client.CreateAdvantage(context.Background(), 3, dto.AdvantageDTO{Description: "Meia-entrada no cinema", CoinCost: 500})
	require.NoError(t, err)

	// Act
	resp, err := client.Redeem(context.Background(), adv.ID, 1)

	// Assert
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^COUPON-\d+-\d+-\d+-\d+$`), resp.CouponCode)
	assert.Equal(t, 750, resp.NewBalance)
	assert.False(t, resp.EmailSent)

	statement, err := client.TransactionsByStudent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, statement, 1)
	assert.Equal(t, ledger.KindStudentRedeem, statement[0].Kind)
	assert.Equal(t, 500, statement[0].Amount)
}

func TestSendCoins_FallbackRecordsBothSides(t *testing.T) {
	// Arrange
	client := newTestClient(t, deadBackend)

	// Act
	require.NoError(t, client.SendCoins(context.Background(), 4, 1, 100, "Participação"))

	// Assert
	st, err := client.GetStudent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1350, st.CoinBalance)

	history, err := client.ProfessorHistory(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 100, history[0].Amount)

	statement, err := client.TransactionsByStudent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, statement, 1)
	assert.Equal(t, ledger.KindStudentReceive, statement[0].Kind)
}
