package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/server/http/dto"
)

// CouponHandler manages coupon registry endpoints.
type CouponHandler struct {
	facade CouponFacade
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(facade CouponFacade) *CouponHandler {
	return &CouponHandler{facade: facade}
}

// Add handles POST /api/coupons.
func (h *CouponHandler) Add(c *gin.Context) {
	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	coupon, err := h.facade.AddCoupon(c.Request.Context(), req.Code, req.Percent)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCoupon), errors.Is(err, domainErrors.ErrInvalidPercent):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrDuplicateCoupon):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CouponResponse{Code: coupon.Code, Percent: coupon.Percent})
}

// List handles GET /api/coupons.
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.facade.Coupons(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CouponResponse, 0, len(coupons))
	for _, coupon := range coupons {
		response = append(response, dto.CouponResponse{Code: coupon.Code, Percent: coupon.Percent})
	}
	c.JSON(http.StatusOK, response)
}
