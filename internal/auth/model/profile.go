package model

// Profile is the normalized identity asserted by an external provider.
// It carries facts only; create/update decisions live in the resolver.
type Profile struct {
	// Provider is the provider tag (e.g. "google").
	Provider string
	// Subject is the stable provider-assigned user identifier.
	Subject string
	// Email is the first email the provider supplied, if any.
	Email string
	// DisplayName is the profile display name.
	DisplayName string
	// Photo is the first profile photo URL, if any.
	Photo string
}
