// Package audit provides the structured audit trail for intent execution.
//
// The execution pipeline emits an ordered stream of events at each stage
// boundary (execute.start, auth.evaluated, schema.validated, route.resolved,
// execute.end). The Sink interface keeps the pipeline decoupled from where
// those events go; backends exist for structured logs, SQLite, MQTT and
// InfluxDB, plus a fan-out over any combination.
//
// Sinks are fire-and-forget: Emit never returns an error and must not
// panic on the hot path. The default sink is a no-op so the pipeline is
// usable without any audit configuration.
package audit
