package dto

// swagger:model
type LoginRequest struct {
	Login    string `json:"login" example:"ana@uni.br"`
	Password string `json:"senha" example:"secret"`
}

// swagger:model
type LoginResponse struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"nome" example:"Ana Lima"`
	Email        string `json:"email" example:"ana@uni.br"`
	Login        string `json:"login" example:"ana@uni.br"`
	Role         string `json:"tipo" example:"aluno"` // aluno, professor, empresa
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}
