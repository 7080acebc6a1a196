// Package handler provides HTTP handlers for the authentication flow.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arenahub/tournament/internal/auth/provider"
	"github.com/arenahub/tournament/internal/auth/resolver"
	"github.com/arenahub/tournament/internal/session"
)

// Handler handles the Google sign-in handshake and logout.
type Handler struct {
	provider   provider.Provider
	resolver   resolver.Resolver
	sessions   session.Store
	sessionTTL time.Duration
	logger     *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(
	p provider.Provider,
	r resolver.Resolver,
	sessions session.Store,
	sessionTTL time.Duration,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		provider:   p,
		resolver:   r,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login handles GET /auth/google: sets the CSRF state cookie and
// redirects to the provider consent screen.
func (h *Handler) Login(c *gin.Context) {
	state := generateState(c)
	c.Redirect(http.StatusFound, h.provider.AuthCodeURL(state))
}

// Callback handles GET /auth/google/callback. Any failure along the
// handshake redirects to /auth/failure; success establishes a session
// principal and redirects home.
func (h *Handler) Callback(c *gin.Context) {
	if !validateState(c) {
		h.logger.Warnw("oauth state mismatch", "client_ip", c.ClientIP())
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		h.logger.Warnw("oauth callback returned error",
			"error", errParam,
			"description", c.Query("error_description"),
		)
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	profile, err := h.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		h.logger.Errorw("oauth code exchange failed", "error", err)
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	user, err := h.resolver.Resolve(c.Request.Context(), profile)
	if err != nil {
		h.logger.Errorw("identity resolution failed", "error", err)
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		h.logger.Errorw("session id generation failed", "error", err)
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	expiresAt := time.Now().Add(h.sessionTTL)
	err = h.sessions.Create(c.Request.Context(), session.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		h.logger.Errorw("session persistence failed", "error", err)
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		Secure:   c.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Infow("login succeeded", "user_id", user.ID)
	c.Redirect(http.StatusFound, "/")
}

// Failure handles GET /auth/failure.
func (h *Handler) Failure(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Google authentication failed. Please try again.",
	})
}

// Logout handles GET /logout: best-effort session delete, cookie clear,
// redirect home.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if delErr := h.sessions.Delete(c.Request.Context(), cookie.Value); delErr != nil {
			h.logger.Warnw("session delete failed", "error", delErr)
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   c.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusFound, "/")
}
