package dto

// swagger:model
type CompanyDTO struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"nome"`
	Document  string `json:"documento"`
	Email     string `json:"email"`
	Login     string `json:"login"`
	Password  string `json:"senha,omitempty"`
	TradeName string `json:"nomeFantasia"`
	CNPJ      string `json:"cnpj"`
}
