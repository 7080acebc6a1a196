// Package router provides auth module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/arenahub/tournament/internal/auth/handler"
	"github.com/arenahub/tournament/internal/auth/provider"
	"github.com/arenahub/tournament/internal/auth/repository"
	"github.com/arenahub/tournament/internal/auth/resolver"
	"github.com/arenahub/tournament/internal/session"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	p provider.Provider,
	sessions session.Store,
	sessionTTL time.Duration,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db)
	res := resolver.New(repo, logger)
	h := handler.New(p, res, sessions, sessionTTL, logger)

	r.GET("/auth/google", h.Login)
	r.GET("/auth/google/callback", h.Callback)
	r.GET("/auth/failure", h.Failure)
	r.GET("/logout", h.Logout)
}
