package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"vican-pos/internal/gateway/middleware"
	"vican-pos/internal/rpc"
)

type AddExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" binding:"required"`
}

func (h *DirectoryHTTPHandler) AddExpense(c *gin.Context) {
	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.AddExpense(ctx, &rpc.AddExpenseRequest{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		ActorID:     middleware.ActorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse("Expense recorded", resp))
}
