package models

import (
	"time"
)

type Company struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"nome" db:"nome"`
	Document  string    `json:"documento" db:"documento"`
	Email     string    `json:"email" db:"email"`
	Login     string    `json:"login" db:"login"`
	Password  []byte    `json:"-" db:"senha"`
	TradeName string    `json:"nomeFantasia" db:"nome_fantasia"`
	CNPJ      string    `json:"cnpj" db:"cnpj"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
