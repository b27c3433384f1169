package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactions_EnrichesBlankNameViaLookup(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/transacoes":
			_, _ = w.Write([]byte(`[{"id":1,"tipo":"ENVIO","valor":100,"usuarioDestinoId":7}]`))
		case "/api/alunos/7":
			_, _ = w.Write([]byte(`{"id":7,"nome":"João Silva"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	txs, err := client.ListTransactions(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "João Silva", txs[0].User.Name)
}

func TestListTransactions_SyntheticLabelWhenLookupMisses(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/transacoes":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"tipo":"ENVIO","valor":100,"usuarioDestinoId":42}]`))
		default:
			http.Error(w, "não encontrado", http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	txs, err := client.ListTransactions(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Student #42", txs[0].User.Name)
}

func TestGetTransaction_ReadsDetailEndpoint(t *testing.T) {
	// Arrange
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":9,"tipo":"RESGATE","valor":500,"usuario":{"id":1,"nome":"Ana Lima"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	// Act
	tx, err := client.GetTransaction(context.Background(), 9)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/api/transacoes/detalhe/9", gotPath)
	assert.Equal(t, "RESGATE", tx.Kind)
	assert.Equal(t, "Ana Lima", tx.User.Name)
}

func TestTransactionsByKind_FallbackMapsBackendKinds(t *testing.T) {
	// Arrange
	client := newTestClient(t, deadBackend)
	require.NoError(t, client.store.SendCoins(4, 1, 100, "Projeto"))

	// Act: the backend vocabulary is accepted even against the demo ledger
	sends, err := client.TransactionsByKind(context.Background(), "ENVIO")
	require.NoError(t, err)
	credits, err := client.TransactionsByKind(context.Background(), "CREDITO")
	require.NoError(t, err)

	// Assert
	assert.Len(t, sends, 1)
	assert.Len(t, credits, 1)
}
