package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vican-pos/internal/domain"
	"vican-pos/internal/gateway/middleware"
	"vican-pos/internal/rpc"
)

type InventoryHTTPHandler struct {
	inventory rpc.InventoryClient
}

func NewInventoryHTTPHandler(inventory rpc.InventoryClient) *InventoryHTTPHandler {
	return &InventoryHTTPHandler{inventory: inventory}
}

type StockMovementRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

type ListMovementsQuery struct {
	ProductID *int64 `form:"product_id,omitempty"`
	Limit     int    `form:"limit,default=200"`
}

// Receive books goods arriving at the warehouse.
func (h *InventoryHTTPHandler) Receive(c *gin.Context) {
	h.move(c, domain.MovementRestock, "Stock received")
}

// Dispatch books goods leaving for the shop floor.
func (h *InventoryHTTPHandler) Dispatch(c *gin.Context) {
	h.move(c, domain.MovementDispatch, "Stock dispatched")
}

func (h *InventoryHTTPHandler) move(c *gin.Context, kind domain.MovementKind, message string) {
	var req StockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.inventory.ApplyMovement(ctx, &rpc.ApplyMovementRequest{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Kind:      string(kind),
		ActorID:   middleware.ActorID(c),
		Note:      req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(message, resp))
}

func (h *InventoryHTTPHandler) ListMovements(c *gin.Context) {
	var query ListMovementsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.inventory.ListMovements(ctx, &rpc.ListMovementsRequest{
		ProductID: query.ProductID,
		Limit:     query.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Movements retrieved successfully", resp.Movements))
}

func (h *InventoryHTTPHandler) PurgeMovement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.inventory.PurgeMovement(ctx, &rpc.IDRequest{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Movement deleted", resp))
}

// Audit lists products whose stored quantity disagrees with their ledger.
func (h *InventoryHTTPHandler) Audit(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.inventory.Audit(ctx, &rpc.Empty{})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Ledger is consistent"
	if len(resp.Discrepancies) > 0 {
		message = "Ledger discrepancies found"
	}
	c.JSON(http.StatusOK, successResponse(message, resp.Discrepancies))
}
