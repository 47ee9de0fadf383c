package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tsogoo/minimart/internal/domain/errors"
	"github.com/tsogoo/minimart/internal/server/http/dto"
)

// BalanceHandler manages cash balance endpoints.
type BalanceHandler struct {
	facade LedgerFacade
}

// NewBalanceHandler constructs BalanceHandler.
func NewBalanceHandler(facade LedgerFacade) *BalanceHandler {
	return &BalanceHandler{facade: facade}
}

// Summary handles GET /api/user/balance.
func (h *BalanceHandler) Summary(c *gin.Context) {
	userID := CurrentUserID(c)
	balance, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// TopUp handles POST /api/user/balance/topup.
func (h *BalanceHandler) TopUp(c *gin.Context) {
	userID := CurrentUserID(c)
	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.TopUp(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNegativeAmount):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}
