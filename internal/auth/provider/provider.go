// Package provider defines the external OAuth provider contract.
package provider

import (
	"context"

	authModel "github.com/arenahub/tournament/internal/auth/model"
)

// Provider is the contract an external auth provider must implement.
// Implementations return identity facts only; user creation, linking and
// session management happen elsewhere.
type Provider interface {
	// Name returns the provider tag (e.g. "google").
	Name() string

	// AuthCodeURL returns the consent-screen URL for the given CSRF state.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for a normalized profile.
	Exchange(ctx context.Context, code string) (*authModel.Profile, error)
}
