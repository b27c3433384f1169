package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-coin/internal/domain/dto"
	"student-coin/internal/repository"
)

type CouponService interface {
	Use(ctx context.Context, code string) (dto.CouponUseResponse, error)
}

type CouponHandler struct {
	log           *slog.Logger
	couponService CouponService
}

func NewCouponHandler(log *slog.Logger, couponService CouponService) *CouponHandler {
	return &CouponHandler{
		log:           log,
		couponService: couponService,
	}
}

// Use
// @Summary Mark a coupon as used
// @Description Validates the coupon code at the partner company and marks it used. Reuse and expired coupons are rejected.
// @Tags cupoms
// @Security BearerAuth
// @Produce json
// @Param codigo path string true "Coupon code"
// @Success 200 {object} dto.CouponUseResponse
// @Failure 400 {string} string "Cupom já utilizado"
// @Failure 404 {string} string "Cupom não encontrado"
// @Router /api/cupoms/{codigo}/usar [post]
func (h *CouponHandler) Use(c *gin.Context) {
	code := c.Param("codigo")

	result, err := h.couponService.Use(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.String(http.StatusNotFound, "Cupom não encontrado")
		case errors.Is(err, repository.ErrCouponUsed):
			c.String(http.StatusBadRequest, "Cupom já utilizado")
		case errors.Is(err, repository.ErrCouponExpired):
			c.String(http.StatusBadRequest, "Cupom vencido")
		default:
			respondError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
