package gateway

import (
	"time"

	"student-coin/internal/domain/dto"
)

// wireUser is the nested counterpart object older backend builds emitted.
type wireUser struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// wireTransaction is the raw transaction record as any historical backend
// build may serialize it. Several field spellings have shipped over time for
// the counterpart id and name; this is the only place that knows about them.
type wireTransaction struct {
	ID          int64  `json:"id"`
	Kind        string `json:"tipo"`
	Date        string `json:"data"`
	Amount      int    `json:"valor"`
	Reason      string `json:"motivo"`
	Description string `json:"descricao"`

	DestUserID        int64     `json:"usuarioDestinoId"`
	DestUserIDSnake   int64     `json:"usuario_destino_id"`
	User              *wireUser `json:"usuario"`
	StudentID         int64     `json:"alunoId"`
	UserID            int64     `json:"usuarioId"`
	DestUserName      string    `json:"usuarioDestinoNome"`
	DestUserNameSnake string    `json:"usuario_destino_nome"`
	UserName          string    `json:"usuarioNome"`
	StudentName       string    `json:"alunoNome"`
}

// normalize resolves the counterpart aliases with a fixed precedence and
// fills the remaining defaults. Every transaction read off the wire goes
// through here exactly once.
func (w wireTransaction) normalize() dto.TransactionDTO {
	userID := w.DestUserID
	if userID == 0 {
		userID = w.DestUserIDSnake
	}
	if userID == 0 && w.User != nil {
		userID = w.User.ID
	}
	if userID == 0 {
		userID = w.StudentID
	}
	if userID == 0 {
		userID = w.UserID
	}
	if userID == 0 {
		userID = 1
	}

	userName := w.DestUserName
	if userName == "" {
		userName = w.DestUserNameSnake
	}
	if userName == "" && w.User != nil {
		userName = w.User.Name
	}
	if userName == "" {
		userName = w.UserName
	}
	if userName == "" {
		userName = w.StudentName
	}

	kind := w.Kind
	if kind == "" {
		kind = "CREDITO"
	}

	date := w.Date
	if date == "" {
		date = time.Now().Format(time.RFC3339)
	}

	reason := w.Reason
	if reason == "" {
		reason = w.Description
	}

	return dto.TransactionDTO{
		ID:     w.ID,
		User:   dto.TransactionUser{ID: userID, Name: userName},
		Date:   date,
		Amount: w.Amount,
		Kind:   kind,
		Reason: reason,
	}
}
