package config

import "time"

type PortalConfig interface {
	GetAPIBaseURL() string
	GetAuthStartURL() string
	GetAPITimeout() time.Duration
	GetSessionMaxAge() time.Duration
	GetSessionSecret() string
}

var _ PortalConfig = Settings{}

// GetAPIBaseURL returns the contest backend base URL (e.g., "https://api.example.com/api")
func (s Settings) GetAPIBaseURL() string {
	return s.APIBaseURL
}

// GetAuthStartURL returns the identity provider entry point the login page links to
func (s Settings) GetAuthStartURL() string {
	return s.AuthStartURL
}

func (s Settings) GetAPITimeout() time.Duration {
	return s.APITimeout
}

// GetSessionMaxAge is the cookie lifetime used when the bearer token carries no expiry
func (s Settings) GetSessionMaxAge() time.Duration {
	return s.SessionMaxAge
}

func (s Settings) GetSessionSecret() string {
	return s.SessionSecret
}
