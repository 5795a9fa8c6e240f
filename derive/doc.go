// Package derive turns a long-term secret plus a contextual salt into the
// key actually used for signature computation, limiting the blast radius
// if one context's derived key is ever exposed.
//
// The method set is closed and each method is a pure one-shot transform of
// (secret, salt, digest). Key derivation here is a namespacing mechanism,
// not a password KDF: secrets are expected to be large and random already.
//
// # What this package must NOT do
//
//   - Cache derived keys across secrets (the engine derives per call).
//   - Log, return in errors, or otherwise expose secret or salt bytes.
package derive
