// Package repository provides data access layer for team registrations.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "github.com/arenahub/tournament/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists one team registration.
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists one team registration. Storage-level data-shape
// violations surface as ConstraintError so the caller can report them
// as validation-class failures.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isConstraintError(err) {
			return nil, &teamModel.ConstraintError{Detail: err.Error()}
		}
		return nil, err
	}

	return team, nil
}

// isConstraintError checks for not-null/check/unique violations from
// Postgres or the sqlite test database.
func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "violates not-null constraint") ||
		strings.Contains(msg, "violates check constraint") ||
		strings.Contains(msg, "NOT NULL constraint failed") ||
		strings.Contains(msg, "CHECK constraint failed")
}
