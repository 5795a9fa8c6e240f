// Package codec implements the reversible text encodings used by the goSign
// wire format: a URL-and-filename-safe base64 variant with padding stripped
// in transit, and a compact big-endian integer encoding over the same
// alphabet used for embedded timestamps.
//
// # What this package must NOT do
//
//   - Perform any cryptographic operation or touch key material.
//   - Accept or produce text containing bytes outside the url-safe alphabet.
//   - Be lossy: Decode(Encode(b)) == b and DecodeInt(EncodeInt(n)) == n for
//     every input.
package codec
