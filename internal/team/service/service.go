// Package service provides the registration submission workflow.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	authModel "github.com/arenahub/tournament/internal/auth/model"
	teamModel "github.com/arenahub/tournament/internal/team/model"
	"github.com/arenahub/tournament/internal/team/repository"
	"github.com/arenahub/tournament/internal/upload"
)

// MediaStore moves a transient file to durable remote storage, returning
// its reference URL, and owns local cleanup of the attempt.
type MediaStore interface {
	Store(ctx context.Context, file *upload.TempFile) (string, error)
}

// Service defines the interface for team registration operations.
type Service interface {
	// Register runs the submission workflow: validate, upload the
	// optional screenshot, persist the registration.
	Register(
		ctx context.Context,
		form *teamModel.RegistrationForm,
		principal *authModel.User,
		file *upload.TempFile,
	) (*teamModel.Registered, error)
}

type service struct {
	repo   repository.Repository
	media  MediaStore
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, media MediaStore, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		media:  media,
		logger: logger,
	}
}

// Register validates the form before any side effect, resolves the
// authoritative email from the principal, uploads the screenshot if one
// was attached, and persists exactly one registration. An upload failure
// aborts the submission; no partial record is left on any path.
func (s *service) Register(
	ctx context.Context,
	form *teamModel.RegistrationForm,
	principal *authModel.User,
	file *upload.TempFile,
) (*teamModel.Registered, error) {
	if violations := form.Validate(); len(violations) > 0 {
		// The media store never ran, so its cleanup guarantee does not
		// cover this file yet.
		if file != nil {
			if err := file.Remove(); err != nil {
				s.logger.Warnw("temp file deletion failed", "path", file.Path, "error", err)
			}
		}
		return nil, &teamModel.ValidationError{Violations: violations}
	}

	// The principal's email always wins over client-supplied form data;
	// the form value is only a fallback for identities without one.
	email := strings.TrimSpace(principal.Email)
	if email == "" {
		email = strings.TrimSpace(form.Email)
	}
	if email == "" {
		if file != nil {
			if err := file.Remove(); err != nil {
				s.logger.Warnw("temp file deletion failed", "path", file.Path, "error", err)
			}
		}
		return nil, &teamModel.ValidationError{Violations: []teamModel.FieldError{
			{Field: "email", Message: "Email is required"},
		}}
	}

	screenshotURL, err := s.media.Store(ctx, file)
	if err != nil {
		s.logger.Errorw("screenshot upload failed", "error", err)
		return nil, teamModel.ErrUploadFailed
	}

	team := &teamModel.Team{
		TeamName:      form.TeamName,
		Email:         email,
		Phone:         form.Phone,
		Leader:        form.Leader,
		Player1:       form.P1,
		Player2:       form.P2,
		Player3:       form.P3,
		Player4:       form.P4,
		TransactionID: form.TransactionID,
	}
	if screenshotURL != "" {
		team.TransactionScreenshot = &screenshotURL
	}

	created, err := s.repo.Create(ctx, team)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team registered",
		"team_id", created.ID,
		"team_name", created.TeamName,
		"has_screenshot", created.TransactionScreenshot != nil,
	)

	return &teamModel.Registered{
		TeamName: created.TeamName,
		Leader:   created.Leader,
		Email:    created.Email,
	}, nil
}
