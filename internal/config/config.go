// Package config loads environment-level configuration for FPT Pray.
//
// Presence or absence of a value toggles behavior: a set relay URL selects
// the relay dispatch strategy, a missing leaderboard URL disables the
// leaderboard, and a missing webhook URL makes the serve handler refuse
// submissions.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment variable names, referenced by operator-facing log messages.
const (
	EnvWebhookURL     = "FPTPRAY_WEBHOOK_URL"
	EnvWebhookSecret  = "FPTPRAY_WEBHOOK_SECRET"
	EnvRelayURL       = "FPTPRAY_RELAY_URL"
	EnvLeaderboardURL = "FPTPRAY_LEADERBOARD_URL"
	EnvSiteURL        = "FPTPRAY_SITE_URL"
	EnvListenAddr     = "FPTPRAY_LISTEN_ADDR"
	EnvDatabase       = "FPTPRAY_DATABASE"
)

// Config holds all environment-level inputs.
type Config struct {
	// WebhookURL is the record-keeping sink the serve handler forwards to.
	WebhookURL string `env:"FPTPRAY_WEBHOOK_URL"`
	// WebhookSecret, when set, is sent as the x-webhook-secret header.
	WebhookSecret string `env:"FPTPRAY_WEBHOOK_SECRET"`
	// RelayURL selects the opaque relay strategy when present.
	RelayURL string `env:"FPTPRAY_RELAY_URL"`
	// LeaderboardURL is the externally aggregated leaderboard endpoint.
	LeaderboardURL string `env:"FPTPRAY_LEADERBOARD_URL"`
	// SiteURL is the base URL of the serve instance the direct strategy
	// posts to.
	SiteURL string `env:"FPTPRAY_SITE_URL" envDefault:"http://localhost:8199"`
	// ListenAddr is the serve command's bind address.
	ListenAddr string `env:"FPTPRAY_LISTEN_ADDR" envDefault:":8199"`
	// Database overrides the badger store path. ":memory:" runs in-memory.
	Database string `env:"FPTPRAY_DATABASE"`
	// HTTPTimeout bounds every outbound network call.
	HTTPTimeout time.Duration `env:"FPTPRAY_HTTP_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasRelay reports whether the relay strategy is configured.
func (c *Config) HasRelay() bool {
	return c.RelayURL != ""
}

// PrayerEndpoint returns the direct-strategy submission URL.
func (c *Config) PrayerEndpoint() string {
	return strings.TrimRight(c.SiteURL, "/") + "/api/prayers"
}
