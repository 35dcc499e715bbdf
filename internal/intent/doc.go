// Package intent defines the canonical Kivai intent payload and its
// normalization rules.
//
// A payload describes a single requested action (e.g. unlock a door, set a
// temperature) together with addressing information, action parameters,
// metadata and optional authorization proof.
//
// # Normalization
//
// Inbound payloads from development tooling are often partial. Normalize
// returns a fully-populated copy of a payload with defaults applied:
//
//   - intent_id: generated when absent or shorter than 8 characters
//   - target:    empty object when absent
//   - params:    empty map when absent
//   - meta:      timestamp/language/confidence/source defaults when absent
//
// Normalize never mutates its input. Callers running in strict mode skip
// normalization entirely and must supply canonical payloads.
package intent
