package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-coin/internal/domain/dto"
	"student-coin/internal/middlewares"
	"student-coin/internal/services"
)

type AuthService interface {
	Login(ctx context.Context, login, password string) (dto.LoginResponse, error)
}

type AuthHandler struct {
	log         *slog.Logger
	authService AuthService
}

func NewAuthHandler(log *slog.Logger, authService AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: authService,
	}
}

// Login
// @Summary Authenticate a student, professor or partner company
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login or email plus password"
// @Success 200 {object} dto.LoginResponse "Profile with token pair"
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 401 {object} map[string]string "Unknown account or wrong password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), input.Login, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFailedToGenerateTokens) || errors.Is(err, services.ErrFailedToStoreRefreshToken):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		case errors.Is(err, middlewares.ErrEmptyField),
			errors.Is(err, middlewares.ErrLoginTooShort),
			errors.Is(err, middlewares.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
