package dto

// swagger:model
type RedemptionResponse struct {
	AdvantageID          int64  `json:"vantagemId"`
	AdvantageDescription string `json:"vantagemDescricao"`
	CoinCost             int    `json:"custoMoedas"`
	CouponCode           string `json:"codigoCupom"`
	RedeemedAt           string `json:"dataResgate"`
	NewBalance           int    `json:"novoSaldo"`
	StudentEmail         string `json:"emailAluno"`
	StudentName          string `json:"nomeAluno"`
	CompanyName          string `json:"empresaNome"`
	CompanyEmail         string `json:"emailEmpresa"`
	EmailSent            bool   `json:"emailEnviado"`
}
