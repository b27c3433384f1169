package dto

// swagger:model
type StudentDTO struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"nome"`
	Document      string `json:"documento"`
	Email         string `json:"email"`
	Login         string `json:"login"`
	Password      string `json:"senha,omitempty"`
	RG            string `json:"rg"`
	Address       string `json:"endereco"`
	Course        string `json:"curso"`
	CoinBalance   int    `json:"saldoMoedas"`
	InstitutionID int64  `json:"instituicaoId"`
}
