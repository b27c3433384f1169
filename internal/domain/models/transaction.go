package models

import (
	"time"
)

// Transaction kinds as stored and served over the wire.
const (
	KindSend   = "ENVIO"
	KindRedeem = "RESGATE"
	KindCredit = "CREDITO"
)

type Transaction struct {
	ID          int64     `json:"id" db:"id"`
	Kind        string    `json:"tipo" db:"tipo"`
	Date        time.Time `json:"data" db:"data"`
	Amount      int       `json:"valor" db:"valor"`
	Reason      string    `json:"motivo" db:"motivo"`
	ProfessorID int64     `json:"professorId,omitempty" db:"professor_id"`
	StudentID   int64     `json:"alunoId,omitempty" db:"aluno_id"`
	CompanyID   int64     `json:"empresaId,omitempty" db:"empresa_id"`
}
