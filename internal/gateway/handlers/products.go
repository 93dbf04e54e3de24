package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"vican-pos/internal/gateway/middleware"
	"vican-pos/internal/rpc"
)

// DirectoryHTTPHandler serves products, customers, users and expenses.
type DirectoryHTTPHandler struct {
	directory rpc.DirectoryClient
}

func NewDirectoryHTTPHandler(directory rpc.DirectoryClient) *DirectoryHTTPHandler {
	return &DirectoryHTTPHandler{directory: directory}
}

type ListQuery struct {
	Search    string `form:"search,omitempty"`
	IsActive  *bool  `form:"is_active,omitempty"`
	PageSize  int    `form:"page_size,default=20"`
	PageToken string `form:"page_token,omitempty"`
}

func (q ListQuery) request() *rpc.ListRequest {
	return &rpc.ListRequest{
		Search:    q.Search,
		Active:    q.IsActive,
		PageSize:  q.PageSize,
		PageToken: q.PageToken,
	}
}

type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	CostPrice decimal.Decimal `json:"cost_price"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

// UpdateProductRequest has no quantity field. Stock only changes through
// the inventory endpoints.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	CostPrice *decimal.Decimal `json:"cost_price,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	IsActive  *bool            `json:"is_active,omitempty"`
}

func (h *DirectoryHTTPHandler) ListProducts(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.ListProducts(ctx, query.request())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Products retrieved successfully", resp.Products, resp.Pagination))
}

func (h *DirectoryHTTPHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.GetProduct(ctx, &rpc.IDRequest{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Product retrieved successfully", resp))
}

func (h *DirectoryHTTPHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.CreateProduct(ctx, &rpc.CreateProductRequest{
		Name:      req.Name,
		CostPrice: req.CostPrice,
		Price:     req.Price,
		Quantity:  req.Quantity,
		ActorID:   middleware.ActorID(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse("Product created successfully", resp))
}

func (h *DirectoryHTTPHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.UpdateProduct(ctx, &rpc.UpdateProductRequest{
		ID:        id,
		Name:      req.Name,
		CostPrice: req.CostPrice,
		Price:     req.Price,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Product updated successfully", resp))
}

func (h *DirectoryHTTPHandler) PurgeProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if _, err := h.directory.PurgeProduct(ctx, &rpc.IDRequest{ID: id}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Product deleted", nil))
}
