package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"student-coin/internal/domain/dto"
)

type StudentService interface {
	Create(ctx context.Context, in dto.StudentDTO) (dto.StudentDTO, error)
	Get(ctx context.Context, id int64) (dto.StudentDTO, error)
	List(ctx context.Context) ([]dto.StudentDTO, error)
	Update(ctx context.Context, id int64, in dto.StudentDTO) (dto.StudentDTO, error)
	Delete(ctx context.Context, id int64) error
	AddCoins(ctx context.Context, id int64, amount int) (int, error)
	DebitCoins(ctx context.Context, id int64, amount int) (int, error)
}

type StudentHandler struct {
	log            *slog.Logger
	studentService StudentService
}

func NewStudentHandler(log *slog.Logger, studentService StudentService) *StudentHandler {
	return &StudentHandler{
		log:            log,
		studentService: studentService,
	}
}

// List
// @Summary List registered students
// @Tags alunos
// @Produce json
// @Success 200 {array} dto.StudentDTO
// @Router /api/alunos [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, students)
}

// Get
// @Summary Fetch one student by id
// @Tags alunos
// @Produce json
// @Param id path int true "Student id"
// @Success 200 {object} dto.StudentDTO
// @Failure 404 {object} map[string]string
// @Router /api/alunos/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// Create
// @Summary Register a student
// @Tags alunos
// @Accept json
// @Produce json
// @Param aluno body dto.StudentDTO true "Student data"
// @Success 201 {object} dto.StudentDTO
// @Failure 400 {object} map[string]string
// @Router /api/alunos [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var input dto.StudentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// Update
// @Summary Update a student's profile
// @Tags alunos
// @Accept json
// @Produce json
// @Param id path int true "Student id"
// @Param aluno body dto.StudentDTO true "Student data"
// @Success 200 {object} dto.StudentDTO
// @Router /api/alunos/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input dto.StudentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// Delete
// @Summary Remove a student
// @Tags alunos
// @Param id path int true "Student id"
// @Success 204
// @Router /api/alunos/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddCoins
// @Summary Credit coins to a student
// @Tags alunos
// @Produce json
// @Param id path int true "Student id"
// @Param quantidade query int true "Amount of coins"
// @Success 200 {object} map[string]int
// @Router /api/alunos/{id}/adicionar-moedas [patch]
func (h *StudentHandler) AddCoins(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	amount, err := strconv.Atoi(c.Query("quantidade"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantidade"})
		return
	}

	balance, err := h.studentService.AddCoins(c.Request.Context(), id, amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saldoMoedas": balance})
}

// DebitCoins
// @Summary Debit coins from a student
// @Tags alunos
// @Produce json
// @Param id path int true "Student id"
// @Param quantidade query int true "Amount of coins"
// @Success 200 {object} map[string]int
// @Failure 400 {string} string "saldo insuficiente"
// @Router /api/alunos/{id}/debitar-moedas [patch]
func (h *StudentHandler) DebitCoins(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	amount, err := strconv.Atoi(c.Query("quantidade"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantidade"})
		return
	}

	balance, err := h.studentService.DebitCoins(c.Request.Context(), id, amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saldoMoedas": balance})
}
