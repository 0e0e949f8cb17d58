// Package gateway implements webhook signature verification and payload
// normalization for the supported payment gateways. Each decoder turns a
// raw gateway delivery into a gateway-neutral payments.Event.
package gateway
