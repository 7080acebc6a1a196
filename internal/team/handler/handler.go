// Package handler provides HTTP handlers for team registration.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arenahub/tournament/internal/middleware"
	teamModel "github.com/arenahub/tournament/internal/team/model"
	"github.com/arenahub/tournament/internal/team/service"
	"github.com/arenahub/tournament/internal/upload"
)

// screenshotField is the multipart file field name.
const screenshotField = "transactionScreenshot"

// Handler handles HTTP requests for team registration.
type Handler struct {
	service service.Service
	tempDir string
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, tempDir string, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, tempDir: tempDir, logger: logger}
}

// Register handles POST /api/team/register. The route sits behind the
// auth gate, so a principal is always attached here.
func (h *Handler) Register(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	var form teamModel.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, "invalid form data")
		return
	}

	var tempFile *upload.TempFile
	if fh, err := c.FormFile(screenshotField); err == nil && fh != nil {
		tempFile, err = upload.SaveTemp(h.tempDir, fh)
		if err != nil {
			h.logger.Errorw("failed to stage uploaded file", "error", err)
			serverError(c, "Server error")
			return
		}
	}

	resp, err := h.service.Register(c.Request.Context(), &form, principal, tempFile)
	if err != nil {
		var validationErr *teamModel.ValidationError
		if errors.As(err, &validationErr) {
			validationFailed(c, validationErr.Violations)
			return
		}

		var constraintErr *teamModel.ConstraintError
		if errors.As(err, &constraintErr) {
			badRequest(c, constraintErr.Detail)
			return
		}

		if errors.Is(err, teamModel.ErrUploadFailed) {
			serverError(c, "Screenshot upload failed")
			return
		}

		h.logger.Errorw("error registering team", "error", err)
		serverError(c, "Server error")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Congratulations " + resp.Leader + "! Your team \"" + resp.TeamName + "\" has been registered successfully!",
		"team":    resp,
	})
}
