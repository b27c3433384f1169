package dto

// swagger:model
type ProfessorDTO struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"nome"`
	CPF           string `json:"cpf"`
	Department    string `json:"departamento"`
	Email         string `json:"email"`
	Login         string `json:"login"`
	Password      string `json:"senha,omitempty"`
	InstitutionID int64  `json:"instituicaoId"`
}
