package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"student-coin/internal/domain/dto"
)

type AdvantageService interface {
	List(ctx context.Context, page, size int, sortBy, direction string) (dto.PageResponse[dto.AdvantageDTO], error)
	ListByCompany(ctx context.Context, companyID int64, page, size int, sortBy, direction string) (dto.PageResponse[dto.AdvantageDTO], error)
	Get(ctx context.Context, id int64) (dto.AdvantageDTO, error)
	Create(ctx context.Context, companyID int64, in dto.AdvantageDTO) (dto.AdvantageDTO, error)
	Update(ctx context.Context, companyID, id int64, in dto.AdvantageDTO) (dto.AdvantageDTO, error)
	Delete(ctx context.Context, companyID, id int64) error
	Redeem(ctx context.Context, advantageID, studentID int64) (dto.RedemptionResponse, error)
}

type AdvantageHandler struct {
	log              *slog.Logger
	advantageService AdvantageService
}

func NewAdvantageHandler(log *slog.Logger, advantageService AdvantageService) *AdvantageHandler {
	return &AdvantageHandler{
		log:              log,
		advantageService: advantageService,
	}
}

// List
// @Summary List advantages with pagination
// @Tags vantagens
// @Produce json
// @Param page query int false "Zero-based page"
// @Param size query int false "Page size"
// @Param sortBy query string false "Sort field (id, descricao, custoMoedas)"
// @Param direction query string false "asc or desc"
// @Success 200 {object} dto.PageResponse[dto.AdvantageDTO]
// @Router /api/vantagens [get]
func (h *AdvantageHandler) List(c *gin.Context) {
	page, size, sortBy, direction := parsePage(c)

	resp, err := h.advantageService.List(c.Request.Context(), page, size, sortBy, direction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListByCompany
// @Summary List one company's advantages with pagination
// @Tags vantagens
// @Produce json
// @Param id path int true "Company id"
// @Success 200 {object} dto.PageResponse[dto.AdvantageDTO]
// @Router /api/empresas/{id}/vantagens [get]
func (h *AdvantageHandler) ListByCompany(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}

	page, size, sortBy, direction := parsePage(c)

	resp, err := h.advantageService.ListByCompany(c.Request.Context(), companyID, page, size, sortBy, direction)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get
// @Summary Fetch one advantage by id
// @Tags vantagens
// @Produce json
// @Param id path int true "Advantage id"
// @Success 200 {object} dto.AdvantageDTO
// @Router /api/vantagens/{id} [get]
func (h *AdvantageHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	adv, err := h.advantageService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, adv)
}

// Create
// @Summary Publish a new advantage for a company
// @Tags vantagens
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Company id"
// @Param vantagem body dto.AdvantageDTO true "Advantage data"
// @Success 201 {object} dto.AdvantageDTO
// @Router /api/empresas/{id}/vantagens [post]
func (h *AdvantageHandler) Create(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input dto.AdvantageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adv, err := h.advantageService.Create(c.Request.Context(), companyID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, adv)
}

// Update
// @Summary Update an advantage owned by a company
// @Tags vantagens
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Company id"
// @Param vid path int true "Advantage id"
// @Param vantagem body dto.AdvantageDTO true "Advantage data"
// @Success 200 {object} dto.AdvantageDTO
// @Router /api/empresas/{id}/vantagens/{vid} [put]
func (h *AdvantageHandler) Update(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}
	id, ok := parseID(c, "vid")
	if !ok {
		return
	}

	var input dto.AdvantageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adv, err := h.advantageService.Update(c.Request.Context(), companyID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, adv)
}

// Delete
// @Summary Remove an advantage owned by a company
// @Tags vantagens
// @Security BearerAuth
// @Param id path int true "Company id"
// @Param vid path int true "Advantage id"
// @Success 204
// @Router /api/empresas/{id}/vantagens/{vid} [delete]
func (h *AdvantageHandler) Delete(c *gin.Context) {
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}
	id, ok := parseID(c, "vid")
	if !ok {
		return
	}

	if err := h.advantageService.Delete(c.Request.Context(), companyID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Redeem
// @Summary Redeem an advantage for a student
// @Description Debits the advantage's cost, records the redemption and issues a coupon code.
// @Tags vantagens
// @Security BearerAuth
// @Produce json
// @Param id path int true "Advantage id"
// @Param alunoId query int true "Student id"
// @Success 200 {object} dto.RedemptionResponse
// @Failure 400 {string} string "saldo insuficiente"
// @Router /api/vantagens/{id}/resgatar [post]
func (h *AdvantageHandler) Redeem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	studentID, err := strconv.ParseInt(c.Query("alunoId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid alunoId"})
		return
	}

	resp, err := h.advantageService.Redeem(c.Request.Context(), id, studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
