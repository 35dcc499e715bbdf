// Package security implements the authorization policy for intent
// execution.
//
// The policy decides whether a payload carries sufficient proof of identity
// for a required role. Proof is an auth object with a non-empty token and a
// role matching the requirement; tokens are not cryptographically verified
// (an explicit non-goal of the current trust model).
//
// The package does not validate schemas, execute adapters, or perform
// routing.
package security
