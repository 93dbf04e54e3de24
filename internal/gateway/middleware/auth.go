package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vican-pos/internal/domain"
	"vican-pos/internal/utils"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// JWTAuth accepts "Authorization: Bearer <session token>" and stores the
// caller's identity on the context.
func JWTAuth(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			abort(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := tokens.ParseToken(strings.TrimSpace(raw), utils.PurposeSession)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, domain.ErrTokenExpired) {
				msg = "token has expired"
			}
			abort(c, http.StatusUnauthorized, msg)
			return
		}

		c.Set(ContextUserID, claims.UserId)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, domain.Role(claims.Role))
		c.Next()
	}
}

// Require lets the request through only when the caller's role holds cap.
func Require(cap domain.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		r, ok := role.(domain.Role)
		if !ok || !r.Can(cap) {
			abort(c, http.StatusForbidden, "you do not have permission for this action")
			return
		}
		c.Next()
	}
}

// ActorID returns the authenticated user's id, if any.
func ActorID(c *gin.Context) *int64 {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}
