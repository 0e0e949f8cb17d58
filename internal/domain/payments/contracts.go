package payments

import (
	"context"
	"errors"
	"net/http"
)

// ErrInvalidSignature is returned by decoders when a webhook payload
// fails signature verification. Handlers map it to 401.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookDecoder verifies a raw webhook delivery and normalizes it into
// an Event. Deliveries the engine does not act on decode to EventIgnored
// rather than an error so the gateway stops retrying them.
type WebhookDecoder interface {
	DecodeAndVerify(payload []byte, header http.Header) (*Event, error)
}

// WebhookProcessor applies a verified event to the order and
// subscription state.
type WebhookProcessor interface {
	Process(ctx context.Context, event *Event) error
}

// EventDeduper claims a gateway event ID before processing. Claim
// returns false when the event was already claimed, in which case the
// delivery is acknowledged without side effects. Release gives a claim
// back after failed processing so the gateway's retry of the same
// event ID is not treated as a duplicate.
type EventDeduper interface {
	Claim(ctx context.Context, gateway, eventID string) (bool, error)
	Release(ctx context.Context, gateway, eventID string) error
}
