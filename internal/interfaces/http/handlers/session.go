// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/navigation"
	"github.com/verve-shop/storefront/internal/domain/session"
	"github.com/verve-shop/storefront/internal/domain/storefront"
	"github.com/verve-shop/storefront/internal/interfaces/http/middleware"
)

// Sessions ties the session cookie to the session manager
type Sessions struct {
	manager *session.Manager
	config  config.SessionConfig
}

// NewSessions creates the cookie-backed session accessor
func NewSessions(manager *session.Manager, cfg config.SessionConfig) *Sessions {
	return &Sessions{manager: manager, config: cfg}
}

// getOrCreateSessionID returns the caller's session id, issuing a new cookie
// when it is missing or malformed
func (s *Sessions) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(s.config.CookieName)
	if err == nil {
		if _, parseErr := uuid.Parse(sessionID); parseErr == nil {
			s.setCookie(c, sessionID)
			return sessionID
		}
	}

	sessionID = uuid.New().String()
	s.setCookie(c, sessionID)
	return sessionID
}

// setCookie (re)issues the cookie so its lifetime slides with the session TTL
func (s *Sessions) setCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.config.CookieName, sessionID, int(s.config.TTL.Seconds()), "/", "", s.config.Secure, true)
}

// Load returns the caller's session
func (s *Sessions) Load(c *gin.Context) (*session.Session, error) {
	return s.manager.Load(c.Request.Context(), s.getOrCreateSessionID(c))
}

// Update mutates and saves the caller's session
func (s *Sessions) Update(c *gin.Context, fn func(*session.Session) error) (*session.Session, error) {
	return s.manager.Update(c.Request.Context(), s.getOrCreateSessionID(c), fn)
}

// Delete drops the caller's session and cookie
func (s *Sessions) Delete(c *gin.Context) error {
	sessionID, err := c.Cookie(s.config.CookieName)
	if err != nil || sessionID == "" {
		return nil
	}
	c.SetCookie(s.config.CookieName, "", -1, "/", "", s.config.Secure, true)
	return s.manager.Delete(c.Request.Context(), sessionID)
}

// SessionHandler serves the rendered storefront and navigation actions
type SessionHandler struct {
	sessions   *Sessions
	storefront *storefront.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *Sessions, storefrontService *storefront.Service) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		storefront: storefrontService,
	}
}

// GetView handles GET /session/view
func (h *SessionHandler) GetView(c *gin.Context) {
	listing, err := parseListingFilter(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	sess, err := h.sessions.Load(c)
	if err != nil {
		respondError(c, err)
		return
	}

	h.render(c, sess, listing, "View rendered successfully")
}

// Dispatch handles POST /session/actions
func (h *SessionHandler) Dispatch(c *gin.Context) {
	var req navigation.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	action, err := navigation.ParseAction(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid action",
			"details": err.Error(),
		})
		return
	}

	sess, err := h.sessions.Update(c, func(s *session.Session) error {
		s.Nav.Dispatch(action)
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.render(c, sess, catalog.Filter{}, "Action applied successfully")
}

// Reset handles DELETE /session
func (h *SessionHandler) Reset(c *gin.Context) {
	if err := h.sessions.Delete(c); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session cleared successfully",
	})
}

func (h *SessionHandler) render(c *gin.Context, sess *session.Session, listing catalog.Filter, message string) {
	view, err := h.storefront.Render(c.Request.Context(), sess, storefront.RenderOptions{
		Listing: listing,
		Admin:   middleware.IsAdminFromContext(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    view,
	})
}
