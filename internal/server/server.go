// Package server is the HTTP boundary of FPT Pray: it re-validates incoming
// submissions with the same rules as the client and forwards accepted ones
// to the configured webhook sink.
//
// Upstream failure is propagated, not swallowed: the caller's merit credit
// depends on a truthful success signal, so a webhook that did not record the
// prayer must not be answered with 200. Failure detail is logged for
// operators only; callers get a generic message.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/vyyka/fptpray/internal/config"
	"github.com/vyyka/fptpray/internal/dispatch"
	fperrors "github.com/vyyka/fptpray/internal/errors"
	"github.com/vyyka/fptpray/internal/logging"
	"github.com/vyyka/fptpray/internal/validate"
)

// MsgUnavailable is the generic failure shown when the sink cannot be used.
const MsgUnavailable = "Không thể ghi nhận lời nguyện lúc này. Vui lòng thử lại trong giây lát."

// msgBadPayload answers requests whose body is not even valid JSON.
const msgBadPayload = "Dữ liệu chưa hợp lệ."

// maxRequestBody bounds the accepted request size. The longest legal wish is
// 1200 runes; anything past this is garbage.
const maxRequestBody = 64 << 10

// logBodySnippet bounds how much upstream response body lands in logs.
const logBodySnippet = 200

// Server handles prayer submissions.
type Server struct {
	cfg     *config.Config
	webhook *dispatch.HTTPClient
	health  *HealthChecker
}

// New creates a server from configuration.
func New(cfg *config.Config, version string) *Server {
	s := &Server{
		cfg:     cfg,
		webhook: dispatch.NewHTTPClient(cfg.HTTPTimeout),
		health:  NewHealthChecker(version),
	}
	s.health.AddCheck("webhook_config", func() error {
		if cfg.WebhookURL == "" {
			return fperrors.NewConfigError(config.EnvWebhookURL)
		}
		return nil
	})
	return s
}

type prayerRequest struct {
	Email string `json:"email"`
	Wish  string `json:"wish"`
}

type prayerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/prayers", s.handleSubmit)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, prayerResponse{Success: false, Message: msgBadPayload})
		return
	}

	log := logging.With("remote", r.RemoteAddr, "request_id", r.Header.Get("x-request-id"))

	var req prayerRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		log.Warn("unreadable submission body", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, prayerResponse{Success: false, Message: msgBadPayload})
		return
	}

	// Never trust the client: the same bounds run again here.
	prayer, err := validate.Prayer(req.Email, req.Wish)
	if err != nil {
		if rej, ok := fperrors.AsRejection(err); ok {
			writeJSON(w, http.StatusUnprocessableEntity, prayerResponse{Success: false, Message: rej.Message})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, prayerResponse{Success: false, Message: msgBadPayload})
		return
	}

	if s.cfg.WebhookURL == "" {
		// The specific missing key stays in the operator log.
		log.Error("prayer submission failed", "error", fperrors.NewConfigError(config.EnvWebhookURL))
		writeJSON(w, http.StatusInternalServerError, prayerResponse{Success: false, Message: MsgUnavailable})
		return
	}

	payload, err := json.Marshal(prayerRequest{Email: prayer.Email, Wish: prayer.Wish})
	if err != nil {
		log.Error("failed to encode webhook payload", "error", err)
		writeJSON(w, http.StatusInternalServerError, prayerResponse{Success: false, Message: MsgUnavailable})
		return
	}

	headers := map[string]string{}
	if s.cfg.WebhookSecret != "" {
		headers["x-webhook-secret"] = s.cfg.WebhookSecret
	}
	if id := r.Header.Get("x-request-id"); id != "" {
		headers["x-request-id"] = id
	}

	result := s.webhook.Post(r.Context(), s.cfg.WebhookURL, headers, payload)
	if result.Error != nil {
		log.Error("prayer submission failed", "error", fperrors.NewNetworkError("webhook forward", result.Error))
		writeJSON(w, http.StatusInternalServerError, prayerResponse{Success: false, Message: MsgUnavailable})
		return
	}
	if !result.Success() {
		snippet := result.Body
		if len(snippet) > logBodySnippet {
			snippet = snippet[:logBodySnippet]
		}
		upErr := &fperrors.UpstreamError{StatusCode: result.StatusCode, Body: string(snippet)}
		log.Error("prayer submission failed", "error", upErr)
		writeJSON(w, http.StatusInternalServerError, prayerResponse{Success: false, Message: MsgUnavailable})
		return
	}

	log.Info("prayer forwarded", "duration", result.Duration)
	writeJSON(w, http.StatusOK, prayerResponse{Success: true})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := s.health.Check()
	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		logging.Logger().Warn("failed to write response", "error", err)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: s.cfg.HTTPTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger().Info("listening", "addr", s.cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
