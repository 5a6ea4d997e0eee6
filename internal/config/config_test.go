package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.WebhookURL)
	assert.Empty(t, cfg.RelayURL)
	assert.False(t, cfg.HasRelay())
	assert.Equal(t, ":8199", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "http://localhost:8199/api/prayers", cfg.PrayerEndpoint())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvWebhookURL, "https://n8n.example.com/webhook/prayers")
	t.Setenv(EnvWebhookSecret, "bi-mat")
	t.Setenv(EnvRelayURL, "https://script.google.com/macros/s/x/exec")
	t.Setenv(EnvSiteURL, "https://fptpray.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://n8n.example.com/webhook/prayers", cfg.WebhookURL)
	assert.Equal(t, "bi-mat", cfg.WebhookSecret)
	assert.True(t, cfg.HasRelay())
	// Trailing slash on the site URL does not double up.
	assert.Equal(t, "https://fptpray.example.com/api/prayers", cfg.PrayerEndpoint())
}
