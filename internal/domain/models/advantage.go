package models

import (
	"time"
)

type Advantage struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"descricao" db:"descricao"`
	Photo       string    `json:"foto,omitempty" db:"foto"` // base64 payload or URL
	CoinCost    int       `json:"custoMoedas" db:"custo_moedas"`
	CompanyID   int64     `json:"empresaId" db:"empresa_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
