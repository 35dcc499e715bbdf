// Package adapter defines the execution contract between the Kivai runtime
// and intent adapters.
//
// An adapter is the execution unit for a single intent name. It declares a
// static Capabilities contract (required device capabilities and auth
// baseline), and maps an intent payload to a raw result. Raw results are
// normalized into a structured Result by NormalizeOutput before the runtime
// touches them, so adapters may return either a Result or a plain map.
//
// Adapters must be deterministic, stateless across calls, and must not
// mutate the payload they receive. The built-in reference adapters perform
// no I/O.
package adapter
