// Package resolver maps external provider profiles to local identities.
package resolver

import (
	"context"

	"go.uber.org/zap"

	authModel "github.com/arenahub/tournament/internal/auth/model"
	"github.com/arenahub/tournament/internal/auth/repository"
)

// Resolver determines which local user a provider profile belongs to.
type Resolver interface {
	// Resolve returns the persisted identity for a provider profile,
	// creating it on first sight and reconciling mutable fields otherwise.
	Resolve(ctx context.Context, profile *authModel.Profile) (*authModel.User, error)
}

type resolver struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new identity resolver instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Resolver {
	return &resolver{repo: repo, logger: logger}
}

// Resolve looks up the identity by provider subject. Unknown subjects get
// a new record; known subjects get exactly the changed, non-empty fields
// among email, photo and display name written back, then re-read.
func (r *resolver) Resolve(ctx context.Context, profile *authModel.Profile) (*authModel.User, error) {
	user, err := r.repo.GetByGoogleID(ctx, profile.Subject)
	if err != nil {
		if err != authModel.ErrUserNotFound {
			return nil, err
		}

		created, createErr := r.repo.Create(ctx, &authModel.User{
			GoogleID:    profile.Subject,
			Email:       profile.Email,
			DisplayName: profile.DisplayName,
			Photo:       profile.Photo,
			Provider:    profile.Provider,
		})
		if createErr != nil {
			return nil, createErr
		}
		r.logger.Infow("identity created", "user_id", created.ID, "provider", created.Provider)
		return created, nil
	}

	updates := map[string]interface{}{}
	if profile.Email != "" && profile.Email != user.Email {
		updates["email"] = profile.Email
	}
	if profile.Photo != "" && profile.Photo != user.Photo {
		updates["photo"] = profile.Photo
	}
	if profile.DisplayName != "" && profile.DisplayName != user.DisplayName {
		updates["display_name"] = profile.DisplayName
	}

	if len(updates) == 0 {
		return user, nil
	}

	updated, err := r.repo.UpdateFields(ctx, user.ID, updates)
	if err != nil {
		return nil, err
	}
	r.logger.Infow("identity reconciled", "user_id", updated.ID, "fields", len(updates))
	return updated, nil
}
