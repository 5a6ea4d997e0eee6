package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyyka/fptpray/internal/config"
	"github.com/vyyka/fptpray/internal/validate"
)

func newTestServer(cfg *config.Config) *httptest.Server {
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 5 * time.Second
	}
	return httptest.NewServer(New(cfg, "test").Handler())
}

func postPrayer(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(url+"/api/prayers", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func TestSubmitForwardsToWebhook(t *testing.T) {
	var calls atomic.Int32
	var forwarded map[string]string
	var gotSecret string
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotSecret = r.Header.Get("x-webhook-secret")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		w.WriteHeader(http.StatusOK)
	}))
	defer sink.Close()

	srv := newTestServer(&config.Config{
		WebhookURL:    sink.URL,
		WebhookSecret: "bi-mat",
	})
	defer srv.Close()

	code, body := postPrayer(t, srv.URL, `{"email":"student@fpt.edu.vn","wish":"Mong thi qua mon"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "bi-mat", gotSecret)
	assert.Equal(t, "student@fpt.edu.vn", forwarded["email"])
	assert.Equal(t, "Mong thi qua mon", forwarded["wish"])
}

func TestSubmitValidation(t *testing.T) {
	var calls atomic.Int32
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer sink.Close()

	srv := newTestServer(&config.Config{WebhookURL: sink.URL})
	defer srv.Close()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty_wish", `{"email":"a@b.co","wish":""}`, validate.MsgIncomplete},
		{"bad_email", `{"email":"not-an-email","wish":"Mong thi qua mon"}`, validate.MsgInvalidEmail},
		{"short_wish", `{"email":"a@b.co","wish":"ngan"}`, validate.MsgWishTooShort},
		{"long_wish", `{"email":"a@b.co","wish":"` + strings.Repeat("x", 1201) + `"}`, validate.MsgWishTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := postPrayer(t, srv.URL, tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
		})
	}

	// Rejected submissions never reach the sink.
	assert.Equal(t, int32(0), calls.Load())
}

func TestSubmitRejectsBrokenJSON(t *testing.T) {
	srv := newTestServer(&config.Config{WebhookURL: "http://unused.invalid"})
	defer srv.Close()

	code, body := postPrayer(t, srv.URL, `{"email":`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, false, body["success"])
}

func TestSubmitMissingWebhookConfig(t *testing.T) {
	srv := newTestServer(&config.Config{})
	defer srv.Close()

	code, body := postPrayer(t, srv.URL, `{"email":"student@fpt.edu.vn","wish":"Mong thi qua mon"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
	// Callers get the generic message, never the missing key.
	assert.Equal(t, MsgUnavailable, body["message"])
}

func TestSubmitPropagatesUpstreamFailure(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow exploded: secret detail", http.StatusBadGateway)
	}))
	defer sink.Close()

	srv := newTestServer(&config.Config{WebhookURL: sink.URL})
	defer srv.Close()

	code, body := postPrayer(t, srv.URL, `{"email":"student@fpt.edu.vn","wish":"Mong thi qua mon"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
	// Upstream detail never leaks to the caller.
	assert.Equal(t, MsgUnavailable, body["message"])
	assert.NotContains(t, body["message"], "secret detail")
}

func TestSubmitUnreachableWebhook(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	sink.Close()

	srv := newTestServer(&config.Config{WebhookURL: sink.URL, HTTPTimeout: time.Second})
	defer srv.Close()

	code, body := postPrayer(t, srv.URL, `{"email":"student@fpt.edu.vn","wish":"Mong thi qua mon"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, MsgUnavailable, body["message"])
}

func TestSubmitMethodNotAllowed(t *testing.T) {
	srv := newTestServer(&config.Config{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/prayers")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	t.Run("healthy_when_configured", func(t *testing.T) {
		srv := newTestServer(&config.Config{WebhookURL: "https://example.com/hook"})
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var status HealthStatus
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "test", status.Version)
	})

	t.Run("unhealthy_without_webhook", func(t *testing.T) {
		srv := newTestServer(&config.Config{})
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
