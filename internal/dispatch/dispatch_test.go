package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyyka/fptpray/internal/config"
	"github.com/vyyka/fptpray/internal/model"
)

func testPrayer() model.Prayer {
	return model.Prayer{
		Email: "student@fpt.edu.vn",
		Wish:  "Mong thi qua mon",
		Nganh: "SE",
	}
}

// =============================================================================
// Strategy Selection Tests
// =============================================================================

func TestNewSelectsStrategy(t *testing.T) {
	t.Run("relay_when_configured", func(t *testing.T) {
		cfg := &config.Config{RelayURL: "https://script.google.com/macros/s/x/exec"}
		d := New(cfg)
		assert.Equal(t, "relay", d.Name())
	})

	t.Run("direct_otherwise", func(t *testing.T) {
		cfg := &config.Config{SiteURL: "http://localhost:8199"}
		d := New(cfg)
		assert.Equal(t, "direct", d.Name())
	})
}

// =============================================================================
// Relay Tests
// =============================================================================

func TestRelaySubmit(t *testing.T) {
	t.Run("single_call_with_relay_body", func(t *testing.T) {
		var calls atomic.Int32
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		relay := NewRelay(srv.URL, NewHTTPClient(5*time.Second))
		outcome := relay.Submit(context.Background(), testPrayer())

		assert.True(t, outcome.OK)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, "student@fpt.edu.vn", got["email"])
		assert.Equal(t, "Mong thi qua mon", got["monguoc"])
		assert.Equal(t, "SE", got["nganh"])
	})

	t.Run("opaque_success_despite_5xx", func(t *testing.T) {
		// The relay cannot observe the response; a served error is
		// still reported as success.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		relay := NewRelay(srv.URL, NewHTTPClient(5*time.Second))
		outcome := relay.Submit(context.Background(), testPrayer())
		assert.True(t, outcome.OK)
		assert.Empty(t, outcome.Message)
	})

	t.Run("transport_error_fails_generic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		relay := NewRelay(srv.URL, NewHTTPClient(time.Second))
		outcome := relay.Submit(context.Background(), testPrayer())
		assert.False(t, outcome.OK)
		assert.Equal(t, MsgSendFailed, outcome.Message)
	})
}

// =============================================================================
// Direct Tests
// =============================================================================

func TestDirectSubmit(t *testing.T) {
	t.Run("accepted_on_2xx", func(t *testing.T) {
		var calls atomic.Int32
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		}))
		defer srv.Close()

		direct := NewDirect(srv.URL, NewHTTPClient(5*time.Second))
		outcome := direct.Submit(context.Background(), testPrayer())

		assert.True(t, outcome.OK)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, "Mong thi qua mon", got["wish"])
		// The relay-only category field never travels on the direct path.
		_, hasNganh := got["nganh"]
		assert.False(t, hasNganh)
	})

	t.Run("handler_message_surfaces_on_422", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"message": "Lời nguyện phải ít nhất 5 ký tự.",
			})
		}))
		defer srv.Close()

		direct := NewDirect(srv.URL, NewHTTPClient(5*time.Second))
		outcome := direct.Submit(context.Background(), testPrayer())
		assert.False(t, outcome.OK)
		assert.Equal(t, "Lời nguyện phải ít nhất 5 ký tự.", outcome.Message)
	})

	t.Run("fallback_message_on_unparseable_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "<html>gateway timeout</html>", http.StatusBadGateway)
		}))
		defer srv.Close()

		direct := NewDirect(srv.URL, NewHTTPClient(5*time.Second))
		outcome := direct.Submit(context.Background(), testPrayer())
		assert.False(t, outcome.OK)
		assert.Equal(t, MsgSendFailed, outcome.Message)
	})

	t.Run("transport_error_fails_generic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		direct := NewDirect(srv.URL, NewHTTPClient(time.Second))
		outcome := direct.Submit(context.Background(), testPrayer())
		assert.False(t, outcome.OK)
		assert.Equal(t, MsgSendFailed, outcome.Message)
	})
}
