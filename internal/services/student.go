package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
	"student-coin/internal/middlewares"
)

var ErrInvalidAmount = errors.New("amount must be positive")

type StudentService struct {
	log               *slog.Logger
	studentRepository StudentRepository
}

type StudentRepository interface {
	SaveStudent(ctx context.Context, st models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (models.Student, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
	UpdateStudent(ctx context.Context, id int64, st models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
	AddCoins(ctx context.Context, id int64, amount int) (int, error)
	DebitCoins(ctx context.Context, id int64, amount int) (int, error)
}

func NewStudentService(log *slog.Logger, studentRepository StudentRepository) *StudentService {
	return &StudentService{
		log:               log,
		studentRepository: studentRepository,
	}
}

func studentToDTO(st models.Student) dto.StudentDTO {
	return dto.StudentDTO{
		ID:            st.ID,
		Name:          st.Name,
		Document:      st.Document,
		Email:         st.Email,
		Login:         st.Login,
		RG:            st.RG,
		Address:       st.Address,
		Course:        st.Course,
		CoinBalance:   st.CoinBalance,
		InstitutionID: st.InstitutionID,
	}
}

func (s *StudentService) Create(ctx context.Context, in dto.StudentDTO) (dto.StudentDTO, error) {
	const op = "services.StudentService.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.String("login", in.Login),
	)

	if err := middlewares.CheckRegister(in.Login, in.Email, in.Password); err != nil {
		return dto.StudentDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.StudentDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	st := models.Student{
		Name:          in.Name,
		Document:      in.Document,
		Email:         in.Email,
		Login:         in.Login,
		Password:      passHash,
		RG:            in.RG,
		Address:       in.Address,
		Course:        in.Course,
		CoinBalance:   in.CoinBalance,
		InstitutionID: in.InstitutionID,
	}

	id, err := s.studentRepository.SaveStudent(ctx, st)
	if err != nil {
		log.Error("failed to save student", slog.String("error", err.Error()))
		return dto.StudentDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("student created", slog.Int64("id", id))

	st.ID = id
	return studentToDTO(st), nil
}

func (s *StudentService) Get(ctx context.Context, id int64) (dto.StudentDTO, error) {
	const op = "services.StudentService.Get"

	st, err := s.studentRepository.GetStudentByID(ctx, id)
	if err != nil {
		return dto.StudentDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return studentToDTO(st), nil
}

func (s *StudentService) List(ctx context.Context) ([]dto.StudentDTO, error) {
	const op = "services.StudentService.List"

	students, err := s.studentRepository.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.StudentDTO, 0, len(students))
	for _, st := range students {
		out = append(out, studentToDTO(st))
	}

	return out, nil
}

func (s *StudentService) Update(ctx context.Context, id int64, in dto.StudentDTO) (dto.StudentDTO, error) {
	const op = "services.StudentService.Update"

	st := models.Student{
		Name:     in.Name,
		Document: in.Document,
		Email:    in.Email,
		Login:    in.Login,
		RG:       in.RG,
		Address:  in.Address,
		Course:   in.Course,
	}

	if err := s.studentRepository.UpdateStudent(ctx, id, st); err != nil {
		return dto.StudentDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.Get(ctx, id)
}

func (s *StudentService) Delete(ctx context.Context, id int64) error {
	const op = "services.StudentService.Delete"

	if err := s.studentRepository.DeleteStudent(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *StudentService) AddCoins(ctx context.Context, id int64, amount int) (int, error) {
	const op = "services.StudentService.AddCoins"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("student_id", id),
		slog.Int("amount", amount),
	)

	if amount <= 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}

	balance, err := s.studentRepository.AddCoins(ctx, id, amount)
	if err != nil {
		log.Error("failed to add coins", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("coins added", slog.Int("balance", balance))

	return balance, nil
}

func (s *StudentService) DebitCoins(ctx context.Context, id int64, amount int) (int, error) {
	const op = "services.StudentService.DebitCoins"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("student_id", id),
		slog.Int("amount", amount),
	)

	if amount <= 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}

	balance, err := s.studentRepository.DebitCoins(ctx, id, amount)
	if err != nil {
		log.Error("failed to debit coins", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("coins debited", slog.Int("balance", balance))

	return balance, nil
}
