package models

import (
	"time"
)

// Coupon is the fulfillment token handed to the partner company after a
// redemption. Code is opaque to everyone but the issuing side. A coupon is
// single-use: Used flips once and UsedAt records when.
type Coupon struct {
	ID          int64      `json:"id" db:"id"`
	Code        string     `json:"codigo" db:"codigo"`
	AdvantageID int64      `json:"vantagemId" db:"vantagem_id"`
	StudentID   int64      `json:"alunoId" db:"aluno_id"`
	RedeemedAt  time.Time  `json:"dataResgate" db:"data_resgate"`
	Used        bool       `json:"utilizado" db:"utilizado"`
	UsedAt      *time.Time `json:"dataUtilizacao,omitempty" db:"data_utilizacao"`
	ExpiresAt   *time.Time `json:"dataVencimento,omitempty" db:"data_vencimento"`
}
