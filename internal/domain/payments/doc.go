// Package payments defines the gateway-neutral webhook event model and the
// contracts for verifying, deduplicating and processing payment webhooks.

package payments
