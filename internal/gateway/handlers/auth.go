package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vican-pos/internal/rpc"
)

type AuthHTTPHandler struct {
	directory rpc.DirectoryClient
}

func NewAuthHTTPHandler(directory rpc.DirectoryClient) *AuthHTTPHandler {
	return &AuthHTTPHandler{directory: directory}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type QRLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *AuthHTTPHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.Login(ctx, &rpc.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Login successful", resp))
}

// QRLogin exchanges a long-lived login token (usually scanned from a badge)
// for a session token.
func (h *AuthHTTPHandler) QRLogin(c *gin.Context) {
	var req QRLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.directory.QRLogin(ctx, &rpc.QRLoginRequest{Token: req.Token})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Login successful", resp))
}
