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

type CompanyService struct {
	log               *slog.Logger
	companyRepository CompanyRepository
}

type CompanyRepository interface {
	SaveCompany(ctx context.Context, c models.Company) (int64, error)
	GetCompanyByID(ctx context.Context, id int64) (models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	UpdateCompany(ctx context.Context, id int64, c models.Company) error
	DeleteCompany(ctx context.Context, id int64) error
}

func NewCompanyService(log *slog.Logger, companyRepository CompanyRepository) *CompanyService {
	return &CompanyService{
		log:               log,
		companyRepository: companyRepository,
	}
}

func companyToDTO(c models.Company) dto.CompanyDTO {
	return dto.CompanyDTO{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Email:     c.Email,
		Login:     c.Login,
		TradeName: c.TradeName,
		CNPJ:      c.CNPJ,
	}
}

func (s *CompanyService) Create(ctx context.Context, in dto.CompanyDTO) (dto.CompanyDTO, error) {
	const op = "services.CompanyService.Create"

	log := s.log.With(
		slog.String("op", op),
		slog.String("login", in.Login),
	)

	if err := middlewares.CheckRegister(in.Login, in.Email, in.Password); err != nil {
		return dto.CompanyDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.CompanyDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	c := models.Company{
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Login:     in.Login,
		Password:  passHash,
		TradeName: in.TradeName,
		CNPJ:      in.CNPJ,
	}

	id, err := s.companyRepository.SaveCompany(ctx, c)
	if err != nil {
		log.Error("failed to save company", slog.String("error", err.Error()))
		return dto.CompanyDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("company created", slog.Int64("id", id))

	c.ID = id
	return companyToDTO(c), nil
}

func (s *CompanyService) Get(ctx context.Context, id int64) (dto.CompanyDTO, error) {
	const op = "services.CompanyService.Get"

	c, err := s.companyRepository.GetCompanyByID(ctx, id)
	if err != nil {
		return dto.CompanyDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return companyToDTO(c), nil
}

func (s *CompanyService) List(ctx context.Context) ([]dto.CompanyDTO, error) {
	const op = "services.CompanyService.List"

	companies, err := s.companyRepository.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]dto.CompanyDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, companyToDTO(c))
	}

	return out, nil
}

func (s *CompanyService) Update(ctx context.Context, id int64, in dto.CompanyDTO) (dto.CompanyDTO, error) {
	const op = "services.CompanyService.Update"

	c := models.Company{
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Login:     in.Login,
		TradeName: in.TradeName,
		CNPJ:      in.CNPJ,
	}

	if err := s.companyRepository.UpdateCompany(ctx, id, c); err != nil {
		return dto.CompanyDTO{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.Get(ctx, id)
}

func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	const op = "services.CompanyService.Delete"

	if err := s.companyRepository.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
