package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authModel "github.com/arenahub/tournament/internal/auth/model"
	"github.com/arenahub/tournament/internal/auth/repository"
	"github.com/arenahub/tournament/internal/session"
)

// principalKey is the gin context key the resolved identity is stored under.
const principalKey = "principal"

// AttachPrincipal attaches a resolved identity to the request context.
func AttachPrincipal(c *gin.Context, user *authModel.User) {
	c.Set(principalKey, user)
}

// CurrentUser returns the identity attached to the request, if any.
func CurrentUser(c *gin.Context) (*authModel.User, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*authModel.User)
	return user, ok && user != nil
}

// Principal resolves the session cookie to a full identity and attaches
// it to the request. Every failure path is silent: many routes are
// public, so a missing or broken principal just means "unauthenticated".
func Principal(store session.Store, users repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Request.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), cookie.Value)
		if err != nil || sess == nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), sess.UserID)
		if err != nil {
			c.Next()
			return
		}

		AttachPrincipal(c, user)
		c.Next()
	}
}

// RequireAuth is the access gate for protected capabilities. It rejects
// requests with no attached principal; redirects are a presentation
// concern and never happen here.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Login required",
			})
			return
		}
		c.Next()
	}
}
