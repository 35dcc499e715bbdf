// Package parser turns free-form utterances into canonical intent
// payloads.
//
// It is a small rule-based reference parser, not a language model. A
// production gateway would front this with real NLP; here the goal is a
// deterministic mapping good enough to drive the pipeline from plain
// text.
package parser

import (
	"regexp"
	"strings"

	"github.com/tech4life-beyond/kivai/internal/intent"
)

// Confidence levels assigned to parsed payloads. A payload only earns
// high confidence when both the intent and the capability were
// recognised.
const (
	highConfidence = 0.9
	lowConfidence  = 0.5
)

// IntentUnknown is returned when no intent phrase matched.
const IntentUnknown = "unknown"

var (
	// "in the kitchen" / "in the living room"
	zoneInThePattern = regexp.MustCompile(`\bin the\s+([a-z]+(?:\s[a-z]+)?)\b`)

	// the 1-2 words immediately before a device noun, e.g.
	// "the kitchen light" or "living room lights"
	zoneDevicePattern = regexp.MustCompile(`\b(?:the\s+)?([a-z]+(?:\s[a-z]+)?)\s+(?:light|lights|thermostat)\b`)
)

// Options controls the metadata stamped onto parsed payloads.
// Zero-value fields fall back to the reference defaults.
type Options struct {
	UserID   string
	Language string
	Trigger  string
}

func (o Options) withDefaults() Options {
	if o.UserID == "" {
		o.UserID = "abc123"
	}
	if o.Language == "" {
		o.Language = "en"
	}
	if o.Trigger == "" {
		o.Trigger = "Kivai"
	}
	return o
}

// Parse converts raw text into a canonical payload using
// capability+zone targeting. Unrecognised text still produces a
// payload, with intent "unknown" and low confidence, so callers can
// decide how to surface the miss.
func Parse(raw string, opts Options) intent.Payload {
	opts = opts.withDefaults()

	zone := extractZone(raw)
	if zone == "" {
		zone = "unknown"
	}
	name := inferIntent(raw)
	capability := inferCapability(raw)

	confidence := lowConfidence
	if name != IntentUnknown && capability != "generic" {
		confidence = highConfidence
	}

	return intent.Payload{
		IntentID: intent.NewIntentID(),
		Intent:   name,
		Target: &intent.Target{
			Capability: capability,
			Zone:       zone,
		},
		Meta: &intent.Meta{
			Timestamp:  intent.UTCNow(),
			Language:   opts.Language,
			Confidence: &confidence,
			Source:     "gateway",
			Trigger:    opts.Trigger,
			UserID:     opts.UserID,
		},
	}
}

// extractZone pulls a zone name out of the utterance, or returns empty
// when none was found.
func extractZone(raw string) string {
	text := strings.ToLower(raw)

	if m := zoneInThePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := zoneDevicePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func inferIntent(raw string) string {
	text := strings.ToLower(raw)

	switch {
	case strings.Contains(text, "turn on"):
		return "turn_on"
	case strings.Contains(text, "turn off"):
		return "turn_off"
	case strings.Contains(text, "set temperature"), strings.Contains(text, "set the temperature"):
		return "set_temperature"
	case strings.Contains(text, "find"), strings.Contains(text, "locate"):
		return "locate"
	}
	return IntentUnknown
}

func inferCapability(raw string) string {
	text := strings.ToLower(raw)

	switch {
	case strings.Contains(text, "light"):
		return "light_control"
	case strings.Contains(text, "thermostat"), strings.Contains(text, "temperature"):
		return "thermostat_control"
	}
	return "generic"
}
