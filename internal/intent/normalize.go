package intent

import "github.com/google/uuid"

// minIntentIDLength is the shortest intent_id accepted as-is during
// normalization. Anything shorter is replaced with a generated UUID.
const minIntentIDLength = 8

const (
	defaultLanguage   = "en"
	defaultConfidence = 1.0
	defaultSource     = "gateway"
)

// NewIntentID generates a fresh intent identifier.
func NewIntentID() string {
	return uuid.NewString()
}

// Normalize returns a fully-populated copy of the payload with defaults
// applied. The input payload is never mutated.
func Normalize(p Payload) Payload {
	out := p.Clone()

	if len(out.IntentID) < minIntentIDLength {
		out.IntentID = NewIntentID()
	}

	if out.Target == nil {
		out.Target = &Target{}
	}

	if out.Params == nil {
		out.Params = map[string]any{}
	}

	if out.Meta == nil {
		out.Meta = &Meta{}
	}
	if out.Meta.Timestamp == "" {
		out.Meta.Timestamp = UTCNow()
	}
	if out.Meta.Language == "" {
		out.Meta.Language = defaultLanguage
	}
	if out.Meta.Confidence == nil {
		c := defaultConfidence
		out.Meta.Confidence = &c
	}
	if out.Meta.Source == "" {
		out.Meta.Source = defaultSource
	}

	return out
}
