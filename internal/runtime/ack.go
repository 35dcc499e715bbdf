package runtime

import (
	"github.com/tech4life-beyond/kivai/internal/device"
	"github.com/tech4life-beyond/kivai/internal/intent"
)

// Status is the terminal state of an execution attempt.
type Status string

// Execution statuses.
const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Pipeline-sourced error codes. Adapter-sourced codes (ADAPTER_ERROR,
// ADAPTER_INVALID_RESULT, BAD_REQUEST, ...) live with the adapter
// contract; auth codes live with the security policy.
const (
	CodeIntentUnsupported          = "INTENT_UNSUPPORTED"
	CodeAdapterCapabilitiesMissing = "ADAPTER_CAPABILITIES_MISSING"
	CodeSchemaInvalid              = "SCHEMA_INVALID"
	CodeAdapterCapabilityMismatch  = "ADAPTER_CAPABILITY_MISMATCH"
)

// AckError is the single error carried by a failure ACK.
type AckError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Route mirrors the resolved device on the ACK for auditability.
type Route struct {
	DeviceID     string   `json:"device_id"`
	Zone         string   `json:"zone"`
	Capabilities []string `json:"capabilities"`
	Reason       string   `json:"reason"`
}

// Ack is the acknowledgement envelope returned for every execution
// attempt. It is built once per pipeline run and mutated in exactly two
// places: on success (Result attached) or on failure (Status flipped and
// Error attached).
type Ack struct {
	ExecutionID string         `json:"execution_id"`
	IntentID    string         `json:"intent_id"`
	Timestamp   string         `json:"timestamp"`
	Status      Status         `json:"status"`
	Intent      string         `json:"intent"`
	DeviceID    string         `json:"device_id,omitempty"`
	Route       *Route         `json:"route,omitempty"`
	Result      map[string]any `json:"result,omitempty"`
	Error       *AckError      `json:"error,omitempty"`
}

// newAck builds the stable ACK base for a payload.
func newAck(p intent.Payload, executionID string) Ack {
	intentID := p.IntentID
	if intentID == "" {
		intentID = intent.NewIntentID()
	}
	return Ack{
		ExecutionID: executionID,
		IntentID:    intentID,
		Timestamp:   intent.UTCNow(),
		Status:      StatusOK,
		Intent:      p.Intent,
		DeviceID:    p.TargetDeviceID(),
	}
}

// applyRoute mirrors a device match onto the ACK and backfills the device
// id when the payload did not address one directly.
func (a *Ack) applyRoute(match *device.Match) {
	a.Route = &Route{
		DeviceID:     match.Device.ID,
		Zone:         match.Device.Zone,
		Capabilities: match.Device.CapabilityStrings(),
		Reason:       string(match.Reason),
	}
	if a.DeviceID == "" {
		a.DeviceID = match.Device.ID
	}
}
