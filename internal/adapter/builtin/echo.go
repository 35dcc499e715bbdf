package builtin

import (
	"github.com/tech4life-beyond/kivai/internal/adapter"
	"github.com/tech4life-beyond/kivai/internal/intent"
)

// Echo is the reserved debug adapter. It routes like any other intent but
// bypasses schema validation, and simply reflects params.message back.
type Echo struct{}

// Intent implements adapter.Adapter.
func (Echo) Intent() string { return "echo" }

// Capabilities implements adapter.Adapter. Echo requires no device
// capabilities, so it may execute against any routed device or none.
func (Echo) Capabilities() adapter.Capabilities {
	return adapter.NewCapabilities("echo", nil)
}

// Execute implements adapter.Adapter.
func (Echo) Execute(payload intent.Payload, ctx adapter.Context) any {
	msg, _ := payload.Params["message"].(string)
	return map[string]any{
		"echo":       msg,
		"gateway_id": ctx.GatewayID,
	}
}
