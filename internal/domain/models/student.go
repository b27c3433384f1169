package models

import (
	"time"
)

type Student struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"nome" db:"nome"`
	Document      string    `json:"documento" db:"documento"`
	Email         string    `json:"email" db:"email"`
	Login         string    `json:"login" db:"login"`
	Password      []byte    `json:"-" db:"senha"`
	RG            string    `json:"rg" db:"rg"`
	Address       string    `json:"endereco" db:"endereco"`
	Course        string    `json:"curso" db:"curso"`
	CoinBalance   int       `json:"saldoMoedas" db:"saldo_moedas"` // whole coins, never negative
	InstitutionID int64     `json:"instituicaoId" db:"instituicao_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
