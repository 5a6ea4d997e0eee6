package dispatch

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/vyyka/fptpray/internal/logging"
	"github.com/vyyka/fptpray/internal/model"
)

// Relay sends prayers to an external endpoint in an opaque transport mode:
// the response status and body are never inspected. Once the request has
// been issued without a transport error the outcome is reported as success.
// The sink's actual acceptance is unknowable to us; this optimism is the
// relay contract, not an oversight.
type Relay struct {
	endpoint string
	client   *HTTPClient
}

// relayPayload is the wire format the relay sink expects.
type relayPayload struct {
	Email   string `json:"email"`
	MongUoc string `json:"monguoc"`
	Nganh   string `json:"nganh,omitempty"`
}

// NewRelay creates a relay dispatcher for the given endpoint.
func NewRelay(endpoint string, client *HTTPClient) *Relay {
	return &Relay{endpoint: endpoint, client: client}
}

// Name identifies the strategy in logs.
func (r *Relay) Name() string {
	return "relay"
}

// Submit issues exactly one fire-and-forget POST.
func (r *Relay) Submit(ctx context.Context, p model.Prayer) Outcome {
	id := uuid.NewString()
	log := logging.With("strategy", r.Name(), "submission_id", id)

	body, err := json.Marshal(relayPayload{
		Email:   p.Email,
		MongUoc: p.Wish,
		Nganh:   p.Nganh,
	})
	if err != nil {
		log.Error("failed to encode relay payload", "error", err)
		return Outcome{OK: false, Message: MsgUnexpected}
	}

	result := r.client.Post(ctx, r.endpoint, map[string]string{"x-request-id": id}, body)
	if result.Error != nil {
		log.Warn("relay request failed", "error", result.Error, "duration", result.Duration)
		return Outcome{OK: false, Message: MsgSendFailed}
	}

	// The response is deliberately not interpreted.
	log.Info("relay request issued", "duration", result.Duration)
	return Outcome{OK: true}
}
