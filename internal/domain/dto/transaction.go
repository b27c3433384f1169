package dto

// TransactionUser identifies the counterpart of a ledger entry as the UI
// shows it.
type TransactionUser struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// swagger:model
type TransactionDTO struct {
	ID       int64           `json:"id"`
	User     TransactionUser `json:"usuario"`
	Date     string          `json:"data"`
	Amount   int             `json:"valor"`
	Kind     string          `json:"tipo"`
	Reason   string          `json:"motivo"`
}

// TransactionRecord is the backend's wire shape for a ledger entry. The
// usuarioDestino* fields carry the counterpart; professorId/alunoId keep the
// raw foreign keys for older consumers.
type TransactionRecord struct {
	ID           int64  `json:"id"`
	Kind         string `json:"tipo"`
	Date         string `json:"data"`
	Amount       int    `json:"valor"`
	Reason       string `json:"motivo"`
	DestUserID   int64  `json:"usuarioDestinoId,omitempty"`
	DestUserName string `json:"usuarioDestinoNome,omitempty"`
	ProfessorID  int64  `json:"professorId,omitempty"`
	StudentID    int64  `json:"alunoId,omitempty"`
}

// swagger:model
type SendCoinsRequest struct {
	StudentID int64  `json:"alunoId" example:"1"`
	Amount    int    `json:"quantidade" example:"100"`
	Reason    string `json:"motivo" example:"Participação em aula"`
}
