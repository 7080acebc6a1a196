// Package session provides the session principal store.
//
// A session holds only the identity's primary key; the full identity is
// rehydrated from the database on every request.
package session

import (
	"context"
	"time"
)

// Session is the serialized principal kept between requests.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store defines how session principals are stored and retrieved.
// Get returns (nil, nil) for unknown or expired sessions.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
