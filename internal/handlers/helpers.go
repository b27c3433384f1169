package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"student-coin/internal/middlewares"
	"student-coin/internal/repository"
	"student-coin/internal/services"
)

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func parsePage(c *gin.Context) (page, size int, sortBy, direction string) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	sortBy = c.Query("sortBy")
	direction = c.Query("direction")
	return page, size, sortBy, direction
}

// respondError translates service errors into the backend's HTTP contract.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, repository.ErrInsufficientBalance):
		c.String(http.StatusBadRequest, "saldo insuficiente")
	case errors.Is(err, repository.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidAdvantage),
		errors.Is(err, middlewares.ErrEmptyField),
		errors.Is(err, middlewares.ErrInvalidEmail),
		errors.Is(err, middlewares.ErrLoginTooShort),
		errors.Is(err, middlewares.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
