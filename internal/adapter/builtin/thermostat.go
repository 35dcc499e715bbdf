package builtin

import (
	"github.com/tech4life-beyond/kivai/internal/adapter"
	"github.com/tech4life-beyond/kivai/internal/device"
	"github.com/tech4life-beyond/kivai/internal/intent"
)

// SetTemperature is the reference thermostat adapter.
//
// Expected params:
//   - value: number (required)
//   - unit:  "C" or "F" (optional, default "C")
type SetTemperature struct{}

// Intent implements adapter.Adapter.
func (SetTemperature) Intent() string { return "set_temperature" }

// Capabilities implements adapter.Adapter.
func (SetTemperature) Capabilities() adapter.Capabilities {
	return adapter.NewCapabilities("set_temperature", []device.Capability{device.CapThermostat})
}

// Execute implements adapter.Adapter.
func (SetTemperature) Execute(payload intent.Payload, ctx adapter.Context) any {
	value, ok := numberParam(payload.Params, "value")
	if !ok {
		return adapter.Failure(adapter.CodeBadRequest, "params.value must be a number", nil)
	}

	unit, _ := payload.Params["unit"].(string)
	if unit == "" {
		unit = "C"
	}

	return map[string]any{
		"ok":         true,
		"action":     "set_temperature",
		"value":      value,
		"unit":       unit,
		"gateway_id": ctx.GatewayID,
	}
}

// numberParam extracts a numeric param regardless of how the payload was
// decoded (JSON gives float64, in-process callers may pass ints).
func numberParam(params map[string]any, key string) (float64, bool) {
	switch v := params[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
