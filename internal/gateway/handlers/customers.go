package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vican-pos/internal/rpc"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (h *DirectoryHTTPHandler) ListCustomers(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.ListCustomers(ctx, query.request())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Customers retrieved successfully", resp.Customers, resp.Pagination))
}

func (h *DirectoryHTTPHandler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.GetCustomer(ctx, &rpc.IDRequest{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Customer retrieved successfully", resp))
}

func (h *DirectoryHTTPHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.CreateCustomer(ctx, &rpc.CreateCustomerRequest{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse("Customer created successfully", resp))
}

func (h *DirectoryHTTPHandler) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.UpdateCustomer(ctx, &rpc.UpdateCustomerRequest{
		ID:    id,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Customer updated successfully", resp))
}
