package dto

// swagger:model
type AdvantageDTO struct {
	ID          int64  `json:"id,omitempty"`
	Description string `json:"descricao"`
	Photo       string `json:"foto,omitempty"`
	CoinCost    int    `json:"custoMoedas"`
	CompanyID   int64  `json:"empresaId,omitempty"`
	CompanyName string `json:"empresaNome,omitempty"`
}
