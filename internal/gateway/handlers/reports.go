package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vican-pos/internal/rpc"
)

type ReportHTTPHandler struct {
	reports rpc.ReportClient
}

func NewReportHTTPHandler(reports rpc.ReportClient) *ReportHTTPHandler {
	return &ReportHTTPHandler{reports: reports}
}

// RangeQuery takes inclusive calendar dates, YYYY-MM-DD.
type RangeQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type WindowQuery struct {
	Days int `form:"days,default=7"`
}

func (h *ReportHTTPHandler) SalesReport(c *gin.Context) {
	var query RangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.reports.SalesReport(ctx, &rpc.RangeRequest{Start: query.StartDate, End: query.EndDate})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Sales report generated", resp.Lines, gin.H{
		"total_revenue": resp.TotalRevenue,
		"total_profit":  resp.TotalProfit,
	}))
}

func (h *ReportHTTPHandler) ExpenseReport(c *gin.Context) {
	var query RangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.reports.ExpenseReport(ctx, &rpc.RangeRequest{Start: query.StartDate, End: query.EndDate})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Expense report generated", resp.Lines, gin.H{
		"total": resp.Total,
	}))
}

func (h *ReportHTTPHandler) Analytics(c *gin.Context) {
	var query WindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.reports.Analytics(ctx, &rpc.WindowRequest{Days: query.Days})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Analytics generated", resp))
}

func (h *ReportHTTPHandler) Restock(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.reports.RestockRecommendations(ctx, &rpc.Empty{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Restock recommendations generated", resp.Items))
}

func (h *ReportHTTPHandler) CashierPerformance(c *gin.Context) {
	var query WindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.reports.CashierPerformance(ctx, &rpc.WindowRequest{Days: query.Days})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Cashier performance generated", resp.Cashiers))
}
