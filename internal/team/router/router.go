// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/arenahub/tournament/internal/config"
	"github.com/arenahub/tournament/internal/middleware"
	"github.com/arenahub/tournament/internal/team/handler"
	"github.com/arenahub/tournament/internal/team/repository"
	"github.com/arenahub/tournament/internal/team/service"
	"github.com/arenahub/tournament/internal/upload"
)

// RegisterRoutes registers team module routes behind the auth gate.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	uploader upload.Uploader,
	cfg appConfig.UploadConfig,
	logger *zap.SugaredLogger,
) {
	repo := repository.New(db)
	media := upload.NewOrchestrator(uploader, cfg.Folder, logger)
	svc := service.New(repo, media, logger)
	h := handler.New(svc, cfg.TempDir, logger)

	r.POST("/api/team/register", middleware.RequireAuth(), h.Register)
}
