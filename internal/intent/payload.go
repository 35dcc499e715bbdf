package intent

import "time"

// Payload is the canonical Kivai intent envelope.
//
// Target, Meta and Auth are pointers so that "absent" is representable for
// payloads that have not been normalized yet. After Normalize, Target and
// Meta are always non-nil; Auth may legitimately remain nil.
type Payload struct {
	IntentID string         `json:"intent_id,omitempty"`
	Intent   string         `json:"intent"`
	Target   *Target        `json:"target,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
	Meta     *Meta          `json:"meta,omitempty"`
	Auth     *Auth          `json:"auth,omitempty"`
}

// Target holds addressing information: either a direct device id, or a
// capability/zone pair (each of which may be partial).
type Target struct {
	DeviceID   string `json:"device_id,omitempty"`
	Capability string `json:"capability,omitempty"`
	Zone       string `json:"zone,omitempty"`
}

// Meta carries payload provenance information.
//
// Confidence is a pointer so a missing value can be distinguished from an
// explicit 0.0 (both are valid states; normalization only fills the former).
type Meta struct {
	Timestamp  string   `json:"timestamp,omitempty"`
	Language   string   `json:"language,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Source     string   `json:"source,omitempty"`
	Trigger    string   `json:"trigger,omitempty"`
	UserID     string   `json:"user_id,omitempty"`
}

// Auth is the payload's proof of identity. Both fields must be non-empty
// for the payload to carry proof; tokens are not cryptographically verified.
type Auth struct {
	RequiredRole string `json:"required_role,omitempty"`
	Token        string `json:"token,omitempty"`
}

// TargetDeviceID returns the directly-addressed device id, or "" when the
// payload does not target a specific device.
func (p *Payload) TargetDeviceID() string {
	if p.Target == nil {
		return ""
	}
	return p.Target.DeviceID
}

// Clone returns an independent copy of the payload. Nested maps are copied
// recursively so mutations of the clone never reach the original.
func (p Payload) Clone() Payload {
	cpy := p
	if p.Target != nil {
		t := *p.Target
		cpy.Target = &t
	}
	if p.Meta != nil {
		m := *p.Meta
		if p.Meta.Confidence != nil {
			c := *p.Meta.Confidence
			m.Confidence = &c
		}
		cpy.Meta = &m
	}
	if p.Auth != nil {
		a := *p.Auth
		cpy.Auth = &a
	}
	cpy.Params = deepCopyMap(p.Params)
	return cpy
}

// deepCopyMap creates a deep copy of a map[string]any.
// Nested maps and slices are recursively copied.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cpy := make(map[string]any, len(m))
	for k, v := range m {
		cpy[k] = deepCopyValue(v)
	}
	return cpy
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		cpy := make([]any, len(val))
		for i, elem := range val {
			cpy[i] = deepCopyValue(elem)
		}
		return cpy
	default:
		// Primitives are safe to copy by value.
		return v
	}
}

// UTCNow returns the current UTC time formatted for payload and ACK
// timestamps (RFC 3339 with a trailing Z).
func UTCNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
