package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-coin/internal/domain/dto"
)

type ProfessorService interface {
	Create(ctx context.Context, in dto.ProfessorDTO) (dto.ProfessorDTO, error)
	Get(ctx context.Context, id int64) (dto.ProfessorDTO, error)
	SendCoins(ctx context.Context, professorID, studentID int64, amount int, reason string) error
}

type ProfessorHandler struct {
	log              *slog.Logger
	professorService ProfessorService
}

func NewProfessorHandler(log *slog.Logger, professorService ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{
		log:              log,
		professorService: professorService,
	}
}

// Create
// @Summary Register a professor
// @Tags professores
// @Accept json
// @Produce json
// @Param professor body dto.ProfessorDTO true "Professor data"
// @Success 201 {object} dto.ProfessorDTO
// @Router /api/professores [post]
func (h *ProfessorHandler) Create(c *gin.Context) {
	var input dto.ProfessorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	professor, err := h.professorService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, professor)
}

// Get
// @Summary Fetch one professor by id
// @Tags professores
// @Produce json
// @Param id path int true "Professor id"
// @Success 200 {object} dto.ProfessorDTO
// @Router /api/professores/{id} [get]
func (h *ProfessorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	professor, err := h.professorService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, professor)
}

// SendCoins
// @Summary Send coins from a professor to a student
// @Description Debits the professor's allowance, credits the student and records both ledger sides.
// @Tags professores
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Professor id"
// @Param transfer body dto.SendCoinsRequest true "Recipient, amount and reason"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "saldo insuficiente"
// @Router /api/professores/{id}/enviar-moedas [post]
func (h *ProfessorHandler) SendCoins(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input dto.SendCoinsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.professorService.SendCoins(c.Request.Context(), id, input.StudentID, input.Amount, input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Coins sent successfully",
	})
}
