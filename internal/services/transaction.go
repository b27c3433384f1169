package services

import (
	"context"
	"fmt"
	"log/slog"

	"student-coin/internal/domain/dto"
)

type TransactionService struct {
	log                   *slog.Logger
	transactionRepository TransactionRepository
}

type TransactionRepository interface {
	ListTransactions(ctx context.Context) ([]dto.TransactionRecord, error)
	TransactionsByStudent(ctx context.Context, studentID int64) ([]dto.TransactionRecord, error)
	TransactionsByKind(ctx context.Context, kind string) ([]dto.TransactionRecord, error)
	TransactionsByProfessor(ctx context.Context, professorID int64) ([]dto.TransactionRecord, error)
	GetTransaction(ctx context.Context, id int64) (dto.TransactionRecord, error)
}

func NewTransactionService(log *slog.Logger, transactionRepository TransactionRepository) *TransactionService {
	return &TransactionService{
		log:                   log,
		transactionRepository: transactionRepository,
	}
}

func (s *TransactionService) List(ctx context.Context) ([]dto.TransactionRecord, error) {
	const op = "services.TransactionService.List"

	records, err := s.transactionRepository.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *TransactionService) ByStudent(ctx context.Context, studentID int64) ([]dto.TransactionRecord, error) {
	const op = "services.TransactionService.ByStudent"

	records, err := s.transactionRepository.TransactionsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *TransactionService) ByKind(ctx context.Context, kind string) ([]dto.TransactionRecord, error) {
	const op = "services.TransactionService.ByKind"

	records, err := s.transactionRepository.TransactionsByKind(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *TransactionService) ByProfessor(ctx context.Context, professorID int64) ([]dto.TransactionRecord, error) {
	const op = "services.TransactionService.ByProfessor"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("professor_id", professorID),
	)

	log.Info("getting professor history")

	records, err := s.transactionRepository.TransactionsByProfessor(ctx, professorID)
	if err != nil {
		log.Error("failed to get professor history", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

func (s *TransactionService) Get(ctx context.Context, id int64) (dto.TransactionRecord, error) {
	const op = "services.TransactionService.Get"

	rec, err := s.transactionRepository.GetTransaction(ctx, id)
	if err != nil {
		return dto.TransactionRecord{}, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}
