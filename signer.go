package goSign

import (
	"crypto/hmac"
	"fmt"
	"hash"
	"strings"

	"github.com/MrEthical07/goSign/codec"
	"github.com/MrEthical07/goSign/derive"
)

// Signer defines a public type used by goSign APIs.
//
// Signer signs opaque byte payloads and verifies signed strings. All state
// is fixed at [Builder.Build]; a Signer is safe for unsynchronized
// concurrent use. The wire format is
//
//	codec(payload) SEP codec(signature)
//
// where the signature is an HMAC over everything left of the last
// separator, keyed with a per-call derivation of the newest secret.
type Signer struct {
	keys        keyRing
	salt        []byte
	sep         byte
	sepText     string
	derivation  derive.Method
	newHash     func() hash.Hash
	epochOffset int64
	metrics     *Metrics
}

// Sign describes the sign operation and its observable behavior.
//
// Sign encodes the payload, signs it with the newest secret, and returns
// the joined signed string. It is deterministic for identical payloads and
// an unchanged newest secret.
func (s *Signer) Sign(payload []byte) string {
	value := codec.Encode(payload)
	sig := s.signature(s.keys[0], []byte(value))
	s.metrics.Inc(MetricSign)
	return value + s.sepText + codec.Encode(sig)
}

// Unsign describes the unsign operation and its observable behavior.
//
// Unsign is the logical inverse of [Sign]. Structurally malformed input
// fails with [ErrBadData] before any key is tried; a signature that
// validates against no secret in the key ring fails with
// [ErrBadSignature]. On success the original payload is returned.
func (s *Signer) Unsign(signed string) ([]byte, error) {
	value, sigText, ok := splitLast(signed, s.sep)
	if !ok {
		s.metrics.Inc(MetricUnsignFailure)
		return nil, fmt.Errorf("%w: separator not found", ErrBadData)
	}
	sig, err := codec.Decode(sigText)
	if err != nil {
		s.metrics.Inc(MetricUnsignFailure)
		return nil, fmt.Errorf("%w: signature segment: %w", ErrBadData, err)
	}
	payload, err := codec.Decode(value)
	if err != nil {
		s.metrics.Inc(MetricUnsignFailure)
		return nil, fmt.Errorf("%w: payload segment: %w", ErrBadData, err)
	}
	if !s.verify([]byte(value), sig) {
		s.metrics.Inc(MetricUnsignFailure)
		return nil, ErrBadSignature
	}
	s.metrics.Inc(MetricUnsign)
	return payload, nil
}

// Timestamped describes the timestamped operation and its observable behavior.
//
// Timestamped wraps the Signer into a [TimestampSigner] that embeds a
// creation time into every signed string and can enforce a maximum age on
// verification. The underlying Signer stays usable.
func (s *Signer) Timestamped() *TimestampSigner {
	return &TimestampSigner{
		signer: s,
		now:    nil,
	}
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot returns the current operation counters. All values are
// zero when metrics are disabled.
func (s *Signer) MetricsSnapshot() MetricsSnapshot {
	return s.metrics.Snapshot()
}

// signature computes the MAC for one message under one secret. The key is
// derived fresh on every call and dropped afterwards; it is never cached
// across secrets.
func (s *Signer) signature(key SecretKey, msg []byte) []byte {
	derived := derive.Key(s.derivation, s.newHash, key, s.salt)
	mac := hmac.New(s.newHash, derived)
	mac.Write(msg)
	return mac.Sum(nil)
}

// verify tries every secret in rotation order. Comparison runs in constant
// time regardless of where a mismatch occurs; an early-exit byte compare
// here would be a timing side channel, not an optimization.
func (s *Signer) verify(msg, sig []byte) bool {
	for _, key := range s.keys {
		if hmac.Equal(s.signature(key, msg), sig) {
			return true
		}
	}
	return false
}

// splitLast splits at the last occurrence of sep so the same separator
// byte appearing in earlier segments of multi-segment formats stays
// unambiguous.
func splitLast(s string, sep byte) (before, after string, ok bool) {
	i := strings.LastIndexByte(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
