package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vican-pos/internal/domain"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err       error
		status    int
		code      string
		retryable bool
	}{
		{&domain.InsufficientStockError{ProductID: 1, Available: 2, Requested: 5}, http.StatusConflict, "INSUFFICIENT_STOCK", false},
		{fmt.Errorf("sell: %w", domain.ErrProductInactive), http.StatusConflict, "PRODUCT_INACTIVE", false},
		{&domain.NotFoundError{Entity: "product", ID: 3}, http.StatusNotFound, "NOT_FOUND", false},
		{domain.Invalid("date", "must be YYYY-MM-DD"), http.StatusBadRequest, "INVALID_INPUT", false},
		{domain.ErrInvalidQuantity, http.StatusBadRequest, "INVALID_QUANTITY", false},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE", false},
		{domain.ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED", false},
		{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", true},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error)
			assert.Equal(t, tt.retryable, body.Retryable)
		})
	}
}
