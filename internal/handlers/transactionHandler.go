package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"student-coin/internal/domain/dto"
	"student-coin/internal/domain/models"
)

type TransactionService interface {
	List(ctx context.Context) ([]dto.TransactionRecord, error)
	ByStudent(ctx context.Context, studentID int64) ([]dto.TransactionRecord, error)
	ByKind(ctx context.Context, kind string) ([]dto.TransactionRecord, error)
	ByProfessor(ctx context.Context, professorID int64) ([]dto.TransactionRecord, error)
	Get(ctx context.Context, id int64) (dto.TransactionRecord, error)
}

type TransactionHandler struct {
	log                *slog.Logger
	transactionService TransactionService
}

func NewTransactionHandler(log *slog.Logger, transactionService TransactionService) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		transactionService: transactionService,
	}
}

// List
// @Summary List every transaction
// @Tags transacoes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TransactionRecord
// @Router /api/transacoes [get]
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := h.transactionService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

// ByStudent
// @Summary List a student's statement (credits and redemptions)
// @Tags transacoes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student id"
// @Success 200 {array} dto.TransactionRecord
// @Router /api/transacoes/aluno/{id} [get]
func (h *TransactionHandler) ByStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	txs, err := h.transactionService.ByStudent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

// ByKind
// @Summary List transactions of one kind
// @Tags transacoes
// @Security BearerAuth
// @Produce json
// @Param tipo path string true "Transaction kind (ENVIO, RESGATE, CREDITO)"
// @Success 200 {array} dto.TransactionRecord
// @Router /api/transacoes/tipo/{tipo} [get]
func (h *TransactionHandler) ByKind(c *gin.Context) {
	kind := strings.ToUpper(c.Param("tipo"))
	switch kind {
	case models.KindSend, models.KindRedeem, models.KindCredit:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction kind"})
		return
	}

	txs, err := h.transactionService.ByKind(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

// ByProfessor
// @Summary List the coin grants a professor has sent
// @Tags transacoes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Professor id"
// @Success 200 {array} dto.TransactionRecord
// @Router /api/transacoes/professor/{id} [get]
func (h *TransactionHandler) ByProfessor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	txs, err := h.transactionService.ByProfessor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

// Get
// @Summary Fetch one transaction by id
// @Tags transacoes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Transaction id"
// @Success 200 {object} dto.TransactionRecord
// @Router /api/transacoes/detalhe/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tx, err := h.transactionService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}
