package goSign

import (
	"fmt"
	"math"
	"time"

	"github.com/MrEthical07/goSign/codec"
)

// TimestampSigner defines a public type used by goSign APIs.
//
// TimestampSigner composes a [Signer] with one extra message-construction
// step: the signed message is codec(payload) SEP codecInt(timestamp), so
// the creation time is covered by the signature and cannot be altered
// independently. The wire format is
//
//	codec(payload) SEP codecInt(timestamp) SEP codec(signature)
//
// Timestamps count seconds since the Unix epoch minus the configured
// epoch offset. A TimestampSigner is safe for unsynchronized concurrent
// use.
type TimestampSigner struct {
	signer *Signer

	// now overrides the clock in tests; nil means time.Now.
	now func() time.Time
}

func (t *TimestampSigner) clock() time.Time {
	if t.now != nil {
		return t.now()
	}
	return time.Now()
}

// Sign describes the sign operation and its observable behavior.
//
// Sign signs the payload with the current time embedded.
func (t *TimestampSigner) Sign(payload []byte) string {
	return t.SignAt(payload, t.clock())
}

// SignAt describes the signat operation and its observable behavior.
//
// SignAt signs the payload with an explicit creation time. Times before
// the configured epoch are clamped to it.
func (t *TimestampSigner) SignAt(payload []byte, at time.Time) string {
	s := t.signer

	ts := at.Unix() - s.epochOffset
	if ts < 0 {
		ts = 0
	}

	value := codec.Encode(payload)
	msg := value + s.sepText + codec.EncodeInt(uint64(ts))
	sig := s.signature(s.keys[0], []byte(msg))
	s.metrics.Inc(MetricSign)
	return msg + s.sepText + codec.Encode(sig)
}

// Unsign describes the unsign operation and its observable behavior.
//
// Unsign verifies the signed string and, when maxAge is positive, rejects
// values older than maxAge with [ErrSignatureExpired] (an [*ExpiredError]
// carrying the embedded timestamp). maxAge <= 0 skips the age check.
// A timestamp ahead of the verifier's clock is accepted: tolerating clock
// skew between signing and verifying hosts is deliberate.
func (t *TimestampSigner) Unsign(signed string, maxAge time.Duration) ([]byte, error) {
	payload, _, err := t.UnsignWithTimestamp(signed, maxAge)
	return payload, err
}

// UnsignWithTimestamp describes the unsignwithtimestamp operation and its observable behavior.
//
// UnsignWithTimestamp behaves like [TimestampSigner.Unsign] and also
// returns the embedded creation time. The timestamp is only meaningful
// when the error is nil or matches [ErrSignatureExpired].
func (t *TimestampSigner) UnsignWithTimestamp(signed string, maxAge time.Duration) ([]byte, time.Time, error) {
	s := t.signer

	fail := func(err error) ([]byte, time.Time, error) {
		s.metrics.Inc(MetricUnsignFailure)
		return nil, time.Time{}, err
	}

	msg, sigText, ok := splitLast(signed, s.sep)
	if !ok {
		return fail(fmt.Errorf("%w: separator not found", ErrBadData))
	}
	value, tsText, ok := splitLast(msg, s.sep)
	if !ok {
		return fail(fmt.Errorf("%w: timestamp segment missing", ErrBadData))
	}
	sig, err := codec.Decode(sigText)
	if err != nil {
		return fail(fmt.Errorf("%w: signature segment: %w", ErrBadData, err))
	}
	payload, err := codec.Decode(value)
	if err != nil {
		return fail(fmt.Errorf("%w: payload segment: %w", ErrBadData, err))
	}

	// The signature covers value SEP timestamp; only after it validates is
	// the timestamp itself trusted enough to parse.
	if !s.verify([]byte(msg), sig) {
		return fail(ErrBadSignature)
	}

	ts, err := codec.DecodeInt(tsText)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrBadTimeSignature, err))
	}
	if ts > math.MaxInt64-uint64(s.epochOffset) {
		return fail(fmt.Errorf("%w: timestamp out of range", ErrBadTimeSignature))
	}
	created := time.Unix(int64(ts)+s.epochOffset, 0)

	if maxAge > 0 {
		if age := t.clock().Sub(created); age > maxAge {
			s.metrics.Inc(MetricExpired)
			return nil, created, &ExpiredError{
				Timestamp: created,
				Age:       age,
				MaxAge:    maxAge,
			}
		}
	}

	s.metrics.Inc(MetricUnsign)
	return payload, created, nil
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot returns the counters of the underlying [Signer].
func (t *TimestampSigner) MetricsSnapshot() MetricsSnapshot {
	return t.signer.MetricsSnapshot()
}
