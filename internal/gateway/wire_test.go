package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireTransaction_AliasPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantID   int64
		wantName string
	}{
		{
			name:     "camelCase wins over every other alias",
			payload:  `{"id":1,"usuarioDestinoId":7,"usuario_destino_id":8,"usuario":{"id":9,"nome":"Nested"},"alunoId":10,"usuarioId":11,"usuarioDestinoNome":"Maria"}`,
			wantID:   7,
			wantName: "Maria",
		},
		{
			name:     "snake_case beats the nested object",
			payload:  `{"id":2,"usuario_destino_id":8,"usuario":{"id":9,"nome":"Nested"}}`,
			wantID:   8,
			wantName: "Nested",
		},
		{
			name:     "nested object beats alunoId",
			payload:  `{"id":3,"usuario":{"id":9},"alunoId":10}`,
			wantID:   9,
			wantName: "",
		},
		{
			name:     "alunoId beats usuarioId",
			payload:  `{"id":4,"alunoId":10,"usuarioId":11}`,
			wantID:   10,
			wantName: "",
		},
		{
			name:     "no alias at all defaults to the seed id",
			payload:  `{"id":5}`,
			wantID:   1,
			wantName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var w wireTransaction
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &w))

			// Act
			tx := w.normalize()

			// Assert
			assert.Equal(t, tt.wantID, tx.User.ID)
			assert.Equal(t, tt.wantName, tx.User.Name)
		})
	}
}

func TestWireTransaction_Defaults(t *testing.T) {
	// Arrange
	var w wireTransaction
	require.NoError(t, json.Unmarshal([]byte(`{"id":6,"descricao":"Resgate: Café"}`), &w))

	// Act
	tx := w.normalize()

	// Assert
	assert.Equal(t, "CREDITO", tx.Kind)
	assert.NotEmpty(t, tx.Date)
	assert.Equal(t, "Resgate: Café", tx.Reason)
}

func TestWireTransaction_MotivoWinsOverDescricao(t *testing.T) {
	// Arrange
	var w wireTransaction
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"motivo":"Projeto","descricao":"Outro"}`), &w))

	// Act
	tx := w.normalize()

	// Assert
	assert.Equal(t, "Projeto", tx.Reason)
}
