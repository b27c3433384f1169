package models

import (
	"time"
)

type Professor struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"nome" db:"nome"`
	CPF           string    `json:"cpf" db:"cpf"`
	Department    string    `json:"departamento" db:"departamento"`
	Email         string    `json:"email" db:"email"`
	Login         string    `json:"login" db:"login"`
	Password      []byte    `json:"-" db:"senha"`
	CoinBalance   int       `json:"saldoMoedas" db:"saldo_moedas"` // semester allowance to hand out
	InstitutionID int64     `json:"instituicaoId" db:"instituicao_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
