package config

import (
	"fmt"
	"time"
)

// AuthConfig holds Google OAuth client credentials and session settings.
type AuthConfig struct {
	// GoogleClientID is the OAuth 2.0 client identifier.
	GoogleClientID string
	// GoogleClientSecret is the OAuth 2.0 client secret.
	GoogleClientSecret string
	// GoogleCallbackURL is the absolute redirect URL registered with Google.
	GoogleCallbackURL string
	// SessionTTL is how long an issued session stays valid.
	SessionTTL time.Duration
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
// The credential defaults are placeholders usable only against a local
// OAuth stub; real deployments must override them.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		GoogleClientID:     GetEnv("GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_ID"),
		GoogleClientSecret: GetEnv("GOOGLE_CLIENT_SECRET", "GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  GetEnv("GOOGLE_CALLBACK_URL", "http://localhost:3000/auth/google/callback"),
		SessionTTL:         GetEnvDuration("SESSION_TTL", 14*24*time.Hour),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if c.GoogleClientID == "" {
		return fmt.Errorf("GoogleClientID must not be empty")
	}
	if c.GoogleClientSecret == "" {
		return fmt.Errorf("GoogleClientSecret must not be empty")
	}
	if c.GoogleCallbackURL == "" {
		return fmt.Errorf("GoogleCallbackURL must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SessionTTL must be greater than 0")
	}
	return nil
}
