package builtin

import (
	"github.com/tech4life-beyond/kivai/internal/adapter"
	"github.com/tech4life-beyond/kivai/internal/device"
	"github.com/tech4life-beyond/kivai/internal/intent"
)

// PlayMusic is the reference speaker adapter.
//
// Expected params:
//   - query: string (optional, default "default_playlist")
type PlayMusic struct{}

// Intent implements adapter.Adapter.
func (PlayMusic) Intent() string { return "play_music" }

// Capabilities implements adapter.Adapter.
func (PlayMusic) Capabilities() adapter.Capabilities {
	return adapter.NewCapabilities("play_music", []device.Capability{device.CapSpeaker})
}

// Execute implements adapter.Adapter.
func (PlayMusic) Execute(payload intent.Payload, ctx adapter.Context) any {
	raw, present := payload.Params["query"]
	query := "default_playlist"
	if present {
		s, ok := raw.(string)
		if !ok {
			return adapter.Failure(adapter.CodeBadRequest, "params.query must be a string", nil)
		}
		if s != "" {
			query = s
		}
	}

	return map[string]any{
		"ok":         true,
		"action":     "play_music",
		"query":      query,
		"gateway_id": ctx.GatewayID,
	}
}
