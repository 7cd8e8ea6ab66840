// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/pkg/auth"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	authenticator *auth.AdminAuthenticator
	logger        *logrus.Entry
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authenticator *auth.AdminAuthenticator, logger *logrus.Entry) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		logger:        logger,
	}
}

// AdminLogin handles POST /admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := h.authenticator.Login(&req)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"email":     req.Email,
			"client_ip": c.ClientIP(),
		}).Warn("🔒 Admin login failed")
		respondError(c, err)
		return
	}

	h.logger.WithField("email", req.Email).Info("🔑 Admin logged in")
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data":    response,
	})
}
