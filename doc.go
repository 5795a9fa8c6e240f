// Package goSign provides a low-latency signing engine for passing opaque
// values through untrusted channels (cookies, URLs, stored tokens) and
// recovering them with cryptographic proof that they were not altered and,
// optionally, that they have not expired.
//
// The package is designed for concurrent server workloads: Signer and
// TimestampSigner methods are safe to call from multiple goroutines after
// initialization through [Builder.Build], because every call is independent
// and all configuration is immutable once built.
//
// # Architecture boundaries
//
// goSign is the public surface. It exposes [Signer], [TimestampSigner],
// [Builder], [Config], the [Serializer] adapters, and the sentinel errors.
// The reusable encodings live in the codec, digest, and derive sub-packages.
//
// # What this package must NOT do
//
//   - Assume any payload serialization: payloads are opaque bytes, and the
//     [Serializer] adapters delegate to a caller-pluggable [PayloadCodec].
//   - Manage secret storage, rotation scheduling, or persistence. The key
//     ring is an ordered list handed in at build time; removal from that
//     list is the only way to invalidate an old secret.
//   - Perform I/O, block, or log. Secret material must never appear in
//     error messages, String output, or any derived artifact other than
//     the key used transiently within a single call.
//
// # Performance contract
//
// Sign and Unsign are the hot paths. Each call performs exactly one key
// derivation per secret tried plus one MAC computation, and signature
// comparison is constant-time regardless of where a mismatch occurs.
package goSign
