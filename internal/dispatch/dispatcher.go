// Package dispatch sends a validated prayer to exactly one backend sink.
//
// Two mutually exclusive strategies exist, chosen once at startup from
// configuration: the opaque relay (fire-and-forget to an external endpoint)
// and the direct call to this project's own /api/prayers handler. A
// dispatcher makes exactly one network call per Submit and never retries;
// retry policy belongs to whoever drives the submission pipeline.
package dispatch

import (
	"context"

	"github.com/vyyka/fptpray/internal/config"
	"github.com/vyyka/fptpray/internal/model"
)

// Fallback messages shown when the sink gives us nothing better.
const (
	MsgSendFailed = "Không thể gửi lời nguyện. Thử lại nhé!"
	MsgUnexpected = "Có lỗi bất ngờ. Bạn thử lại sau giúp nhé!"
)

// Outcome is the reported result of a dispatch.
type Outcome struct {
	OK bool
	// Message carries the failure feedback for the visitor. Empty on
	// success.
	Message string
}

// Dispatcher submits a validated prayer to a backend sink.
type Dispatcher interface {
	Submit(ctx context.Context, p model.Prayer) Outcome
	// Name identifies the strategy in logs.
	Name() string
}

// New selects the dispatch strategy from configuration. A configured relay
// endpoint wins; otherwise the direct strategy posts to the site's own
// submission handler. The choice is made once, not re-evaluated per call.
func New(cfg *config.Config) Dispatcher {
	client := NewHTTPClient(cfg.HTTPTimeout)
	if cfg.HasRelay() {
		return NewRelay(cfg.RelayURL, client)
	}
	return NewDirect(cfg.PrayerEndpoint(), client)
}
