// Package digest maps stable algorithm identifiers to hash constructors.
//
// The set of algorithms is closed: callers pick one of the exported
// [Algorithm] constants in their configuration and the engine resolves it
// once at build time. SHA-1 remains the default for wire compatibility
// with signatures produced by legacy peers; new deployments that do not
// need that compatibility should prefer SHA-256 or BLAKE2b.
//
// # What this package must NOT do
//
//   - Accept arbitrary user-supplied hash constructors (the identifier set
//     is the contract between signer instances sharing secrets).
//   - Perform key derivation or MAC computation itself.
package digest
