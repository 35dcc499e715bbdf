// Package runtime implements the intent execution pipeline.
//
// The pipeline is the only component with cross-cutting control flow. It
// sequences, in fixed order and terminal on first failure:
//
//	start → normalize → resolve adapter → resolve capability declaration →
//	authorize → validate schema → route → enforce capability match →
//	dispatch → end
//
// and emits an audit event at each stage boundary. The reserved debug
// intent "echo" skips schema validation; authorization runs before schema
// validation so a schema failure can never mask a missing-auth failure.
//
// The pipeline's contract is "always returns an ACK": every error kind is
// recovered locally into a failure ACK with a stable code and a
// human-readable message, and nothing escapes as a fault.
//
// # Concurrency
//
// Execute is a pure synchronous function. The executor's registries are
// read-only after construction, so a single Executor is safely shared
// across concurrent requests; each invocation works on its own payload
// copy (normalization is copy-on-normalize, the caller's payload is never
// mutated).
package runtime
