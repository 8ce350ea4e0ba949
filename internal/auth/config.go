package auth

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds auth service settings, loaded from the environment.
// When URL is empty the app runs in local mode: no users, no sessions,
// and the gate sees an initial session with no user.
type Config struct {
	URL         string // base URL of the auth service, e.g. https://auth.example.com
	APIKey      string // public API key sent with every request
	SessionFile string // where the session token is persisted
	RefreshSecs int    // seconds between background token refreshes
	LogGate     bool   // log every auth-gate decision to stderr
}

// Enabled reports whether a hosted auth service is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}

// LoadConfig reads auth settings from FORWARD_AUTH_* environment variables.
func LoadConfig() Config {
	cfg := Config{
		URL:         os.Getenv("FORWARD_AUTH_URL"),
		APIKey:      os.Getenv("FORWARD_AUTH_KEY"),
		SessionFile: os.Getenv("FORWARD_SESSION_FILE"),
		RefreshSecs: 3300,
	}
	if cfg.SessionFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.SessionFile = filepath.Join(home, ".forward", "session.json")
		}
	}
	if v := os.Getenv("FORWARD_AUTH_REFRESH_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RefreshSecs = n
		}
	}
	if v := os.Getenv("FORWARD_AUTH_LOG_GATE"); v != "" {
		cfg.LogGate, _ = strconv.ParseBool(v)
	}
	return cfg
}
