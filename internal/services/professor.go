package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
	"student-coin/internal/middlewares"
)

// defaultAllowance is the per-semester coin budget a new professor starts
// with.
const defaultAllowance = 1000

type ProfessorService struct {
	log                 *slog.Logger
	professorRepository ProfessorRepository
}

type ProfessorRepository interface {
	SaveProfessor(ctx context.Context, p models.Professor) (int64, error)
	GetProfessorByID(ctx context.Context, id int64) (models.Professor, error)
	TransferCoins(ctx context.Context, professorID, studentID int64, amount int, reason string) error
}

func NewProfessorService(log *slog.Logger, professorRepository ProfessorRepository) *ProfessorService {
	return &ProfessorService{
		log:                 log,
		professorRepository: professorRepository,
	}
}

func (s *ProfessorService) Create(ctx context.Context, in dto.ProfessorDTO) (dto.ProfessorDTO, error) {
	const op = "services.ProfessorService.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.String("login", in.Login),
	)

	if err := middlewares.CheckRegister(in.Login, in.Email, in.Password); err != nil {
		return dto.ProfessorDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.ProfessorDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	p := models.Professor{
		Name:          in.Name,
		CPF:           in.CPF,
		Department:    in.Department,
		Email:         in.Email,
		Login:         in.Login,
		Password:      passHash,
		CoinBalance:   defaultAllowance,
		InstitutionID: in.InstitutionID,
	}

	id, err := s.professorRepository.SaveProfessor(ctx, p)
	if err != nil {
		log.Error("failed to save professor", slog.String("error", err.Error()))
		return dto.ProfessorDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("professor created", slog.Int64("id", id))

	return dto.ProfessorDTO{
		ID:            id,
		Name:          in.Name,
		CPF:           in.CPF,
		Department:    in.Department,
		Email:         in.Email,
		Login:         in.Login,
		InstitutionID: in.InstitutionID,
	}, nil
}

func (s *ProfessorService) Get(ctx context.Context, id int64) (dto.ProfessorDTO, error) {
	const op = "services.ProfessorService.Get"

	p, err := s.professorRepository.GetProfessorByID(ctx, id)
	if err != nil {
		return dto.ProfessorDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return dto.ProfessorDTO{
		ID:            p.ID,
		Name:          p.Name,
		CPF:           p.CPF,
		Department:    p.Department,
		Email:         p.Email,
		Login:         p.Login,
		InstitutionID: p.InstitutionID,
	}, nil
}

// SendCoins grants amount coins from the professor's allowance to a student,
// recording both ledger sides.
func (s *ProfessorService) SendCoins(ctx context.Context, professorID, studentID int64, amount int, reason string) error {
	const op = "services.ProfessorService.SendCoins"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("professor_id", professorID),
		slog.Int64("student_id", studentID),
		slog.Int("amount", amount),
	)

	if amount <= 0 {
		return fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}

	log.Info("sending coins")

	if err := s.professorRepository.TransferCoins(ctx, professorID, studentID, amount, reason); err != nil {
		log.Error("failed to transfer coins", slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("coins sent")

	return nil
}
