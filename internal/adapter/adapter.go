package adapter

import "github.com/tech4life-beyond/kivai/internal/intent"

// DefaultGatewayID identifies the local gateway in adapter results when no
// gateway id is configured.
const DefaultGatewayID = "local-gateway"

// Context carries execution context into an adapter call.
// Kept minimal and explicit so every field is auditable.
type Context struct {
	GatewayID string
	UserID    string
	RequestID string
}

// NewContext returns a Context with the default gateway id.
func NewContext() Context {
	return Context{GatewayID: DefaultGatewayID}
}

// Adapter executes one intent against a device class.
//
// Execute returns a raw result: either a Result, or a map[string]any that
// NormalizeOutput converts. Any other shape is rejected during
// normalization.
type Adapter interface {
	// Intent is the canonical intent name this adapter executes.
	Intent() string

	// Capabilities is the adapter's static declaration of required device
	// capabilities and auth baseline. The declared intent must match
	// Intent().
	Capabilities() Capabilities

	// Execute performs the action described by the payload. It must not
	// mutate the payload and must not retain state across calls.
	Execute(payload intent.Payload, ctx Context) any
}
