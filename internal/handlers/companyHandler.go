package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-coin/internal/domain/dto"
)

type CompanyService interface {
	Create(ctx context.Context, in dto.CompanyDTO) (dto.CompanyDTO, error)
	Get(ctx context.Context, id int64) (dto.CompanyDTO, error)
	List(ctx context.Context) ([]dto.CompanyDTO, error)
	Update(ctx context.Context, id int64, in dto.CompanyDTO) (dto.CompanyDTO, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyHandler struct {
	log            *slog.Logger
	companyService CompanyService
}

func NewCompanyHandler(log *slog.Logger, companyService CompanyService) *CompanyHandler {
	return &CompanyHandler{
		log:            log,
		companyService: companyService,
	}
}

// List
// @Summary List partner companies
// @Tags empresas
// @Produce json
// @Success 200 {array} dto.CompanyDTO
// @Router /api/empresas [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// Get
// @Summary Fetch one partner company by id
// @Tags empresas
// @Produce json
// @Param id path int true "Company id"
// @Success 200 {object} dto.CompanyDTO
// @Router /api/empresas/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// Create
// @Summary Register a partner company
// @Tags empresas
// @Accept json
// @Produce json
// @Param empresa body dto.CompanyDTO true "Company data"
// @Success 201 {object} dto.CompanyDTO
// @Router /api/empresas [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var input dto.CompanyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// Update
// @Summary Update a partner company
// @Tags empresas
// @Accept json
// @Produce json
// @Param id path int true "Company id"
// @Param empresa body dto.CompanyDTO true "Company data"
// @Success 200 {object} dto.CompanyDTO
// @Router /api/empresas/{id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input dto.CompanyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// Delete
// @Summary Remove a partner company
// @Tags empresas
// @Param id path int true "Company id"
// @Success 204
// @Router /api/empresas/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
