package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"vican-pos/internal/domain"
)

const defaultTimeout = 10 * time.Second

type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     string      `json:"error,omitempty"`
	Retryable bool        `json:"retryable,omitempty"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func successWithMetaResponse(message string, data interface{}, meta interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

func errorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

type httpError struct {
	status int
	code   string
	err    error
}

// Order matters: the first kind the error matches wins.
var httpErrors = []httpError{
	{http.StatusConflict, "INSUFFICIENT_STOCK", domain.ErrInsufficientStock},
	{http.StatusConflict, "PRODUCT_INACTIVE", domain.ErrProductInactive},
	{http.StatusConflict, "HAS_HISTORY", domain.ErrHasHistory},
	{http.StatusConflict, "DUPLICATE", domain.ErrDuplicate},
	{http.StatusNotFound, "NOT_FOUND", domain.ErrNotFound},
	{http.StatusBadRequest, "INVALID_QUANTITY", domain.ErrInvalidQuantity},
	{http.StatusBadRequest, "INVALID_INPUT", domain.ErrInvalidInput},
	{http.StatusUnauthorized, "INVALID_CREDENTIALS", domain.ErrInvalidCredentials},
	{http.StatusUnauthorized, "TOKEN_EXPIRED", domain.ErrTokenExpired},
	{http.StatusUnauthorized, "TOKEN_INVALID", domain.ErrTokenInvalid},
	{http.StatusServiceUnavailable, "STORE_UNAVAILABLE", domain.ErrStoreUnavailable},
}

// respondError writes the HTTP form of a backend error.
func respondError(c *gin.Context, err error) {
	for _, he := range httpErrors {
		if errors.Is(err, he.err) {
			c.JSON(he.status, APIResponse{
				Success:   false,
				Message:   err.Error(),
				Error:     he.code,
				Retryable: domain.IsRetryable(err),
			})
			return
		}
	}

	log.Printf("[gateway] %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Message: "internal error",
		Error:   "INTERNAL",
	})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse("invalid "+name))
		return 0, false
	}
	return id, true
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), defaultTimeout)
}
