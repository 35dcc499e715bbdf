package builtin

import (
	"github.com/tech4life-beyond/kivai/internal/adapter"
	"github.com/tech4life-beyond/kivai/internal/device"
	"github.com/tech4life-beyond/kivai/internal/intent"
	"github.com/tech4life-beyond/kivai/internal/security"
)

// UnlockDoor is the reference lock adapter. It declares an auth baseline
// (owner role) which the runtime enforces before dispatch.
type UnlockDoor struct{}

// Intent implements adapter.Adapter.
func (UnlockDoor) Intent() string { return "unlock_door" }

// Capabilities implements adapter.Adapter.
func (UnlockDoor) Capabilities() adapter.Capabilities {
	return adapter.NewCapabilities("unlock_door", []device.Capability{device.CapLock}).
		WithAuth(string(security.RoleOwner))
}

// Execute implements adapter.Adapter.
func (UnlockDoor) Execute(_ intent.Payload, ctx adapter.Context) any {
	return map[string]any{
		"ok":         true,
		"action":     "unlock_door",
		"gateway_id": ctx.GatewayID,
	}
}
