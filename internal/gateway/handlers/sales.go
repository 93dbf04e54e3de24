package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vican-pos/internal/gateway/middleware"
	"vican-pos/internal/rpc"
)

type SalesHTTPHandler struct {
	sales rpc.SalesClient
}

func NewSalesHTTPHandler(sales rpc.SalesClient) *SalesHTTPHandler {
	return &SalesHTTPHandler{sales: sales}
}

type SellRequest struct {
	ProductID  int64  `json:"product_id" binding:"required"`
	Quantity   int64  `json:"quantity"`
	CustomerID *int64 `json:"customer_id,omitempty"`
}

// Sell records a sale for the authenticated cashier. The quantity is not
// range-checked here; the backend owns that rule.
func (h *SalesHTTPHandler) Sell(c *gin.Context) {
	var req SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.sales.Sell(ctx, &rpc.SellRequest{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		ActorID:    middleware.ActorID(c),
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(
		fmt.Sprintf("Sale #%d completed", resp.SaleID), resp))
}

func (h *SalesHTTPHandler) GetReceipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.sales.GetReceipt(ctx, &rpc.IDRequest{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Receipt retrieved successfully", resp))
}

func (h *SalesHTTPHandler) PurgeSale(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := h.sales.PurgeSale(ctx, &rpc.IDRequest{ID: id}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Sale deleted", nil))
}
