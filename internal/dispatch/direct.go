package dispatch

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/vyyka/fptpray/internal/logging"
	"github.com/vyyka/fptpray/internal/model"
)

// Direct posts prayers to the project's own submission handler and awaits a
// structured response. Only a 2xx answer counts as success, so merit credit
// downstream is backed by a truthful signal from the sink.
type Direct struct {
	endpoint string
	client   *HTTPClient
}

// directPayload is the wire format of POST /api/prayers.
type directPayload struct {
	Email string `json:"email"`
	Wish  string `json:"wish"`
}

// directResponse mirrors the handler's response envelope.
type directResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewDirect creates a direct dispatcher for the given endpoint.
func NewDirect(endpoint string, client *HTTPClient) *Direct {
	return &Direct{endpoint: endpoint, client: client}
}

// Name identifies the strategy in logs.
func (d *Direct) Name() string {
	return "direct"
}

// Submit issues exactly one POST and interprets the handler's answer.
func (d *Direct) Submit(ctx context.Context, p model.Prayer) Outcome {
	id := uuid.NewString()
	log := logging.With("strategy", d.Name(), "submission_id", id)

	body, err := json.Marshal(directPayload{Email: p.Email, Wish: p.Wish})
	if err != nil {
		log.Error("failed to encode payload", "error", err)
		return Outcome{OK: false, Message: MsgUnexpected}
	}

	result := d.client.Post(ctx, d.endpoint, map[string]string{"x-request-id": id}, body)
	if result.Error != nil {
		log.Warn("submission request failed", "error", result.Error, "duration", result.Duration)
		return Outcome{OK: false, Message: MsgSendFailed}
	}

	if result.Success() {
		log.Info("submission accepted", "status", result.StatusCode, "duration", result.Duration)
		return Outcome{OK: true}
	}

	// Surface the handler-supplied message when there is one.
	message := MsgSendFailed
	var parsed directResponse
	if err := json.Unmarshal(result.Body, &parsed); err == nil && parsed.Message != "" {
		message = parsed.Message
	}

	log.Warn("submission rejected by handler", "status", result.StatusCode, "duration", result.Duration)
	return Outcome{OK: false, Message: message}
}
