// Package repository provides data access layer for identities.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "github.com/arenahub/tournament/internal/auth/model"
)

// Repository defines the interface for identity data access operations.
type Repository interface {
	// GetByGoogleID finds a user by the provider-assigned identifier.
	GetByGoogleID(ctx context.Context, googleID string) (*authModel.User, error)

	// GetByID finds a user by primary key.
	GetByID(ctx context.Context, id string) (*authModel.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *authModel.User) (*authModel.User, error)

	// UpdateFields applies a partial update and returns the fresh record.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*authModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new identity repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByGoogleID finds a user by the provider-assigned identifier.
func (r *repository) GetByGoogleID(ctx context.Context, googleID string) (*authModel.User, error) {
	var user authModel.User
	err := r.db.WithContext(ctx).
		Where("google_id = ?", googleID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByID finds a user by primary key.
func (r *repository) GetByID(ctx context.Context, id string) (*authModel.User, error) {
	var user authModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Create persists a new user. The ID is generated app-side so the same
// code path works on Postgres and the sqlite test database.
func (r *repository) Create(ctx context.Context, user *authModel.User) (*authModel.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateError(err) {
			return nil, authModel.ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// UpdateFields applies a partial update, then re-reads the record so the
// caller observes exactly what was written.
func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (*authModel.User, error) {
	if len(fields) > 0 {
		fields["updated_at"] = time.Now()
		err := r.db.WithContext(ctx).
			Model(&authModel.User{}).
			Where("id = ?", id).
			Updates(fields).Error
		if err != nil {
			if isDuplicateError(err) {
				return nil, authModel.ErrEmailTaken
			}
			return nil, err
		}
	}

	return r.GetByID(ctx, id)
}

// isDuplicateError checks if err is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
