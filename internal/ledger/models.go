package ledger

// Roles and transaction kinds stored in the demo blob. Role values follow
// the backend's wire vocabulary so the fallback login response matches the
// network one.
const (
	RoleStudent   = "aluno"
	RoleProfessor = "professor"
	RoleCompany   = "empresa"
)

const (
	KindProfessorSend  = "professorSend"
	KindStudentReceive = "studentReceive"
	KindStudentRedeem  = "studentRedeem"
)

type User struct {
	ID       int64  `json:"id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Password string `json:"senha,omitempty"`
}

type Student struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	Email       string `json:"email"`
	Document    string `json:"cpf,omitempty"`
	RG          string `json:"rg,omitempty"`
	Institution string `json:"instituicao,omitempty"`
	Course      string `json:"curso,omitempty"`
	Address     string `json:"endereco,omitempty"`
	CoinBalance int    `json:"saldo"`
}

type Advantage struct {
	ID          int64  `json:"id"`
	Description string `json:"descricao"`
	Photo       string `json:"foto,omitempty"`
	CoinCost    int    `json:"custoMoedas"`
	CompanyID   int64  `json:"empresaId,omitempty"`
	CompanyName string `json:"empresaNome,omitempty"`
}

type Transaction struct {
	ID          int64  `json:"id"`
	Kind        string `json:"tipo"`
	Date        string `json:"data"`
	ProfessorID int64  `json:"professorId,omitempty"`
	StudentID   int64  `json:"alunoId,omitempty"`
	Amount      int    `json:"valor"`
	Reason      string `json:"motivo,omitempty"`
	Description string `json:"descricao,omitempty"`
}

// blob is the whole on-disk document. Every mutation rewrites it in full.
type blob struct {
	Users        []User        `json:"users"`
	Students     []Student     `json:"students"`
	Advantages   []Advantage   `json:"advantages"`
	Transactions []Transaction `json:"transactions"`
}
