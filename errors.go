package goSign

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBadData is an exported constant or variable used by the signing engine.
	// It reports structurally malformed input: a missing separator, an
	// undecodable segment, or characters outside the codec alphabet. It is
	// always detected before any cryptographic check.
	ErrBadData = errors.New("malformed signed data")
	// ErrBadSignature is an exported constant or variable used by the signing engine.
	// It reports a well-formed signature that did not validate against any
	// secret in the key ring.
	ErrBadSignature = errors.New("signature does not match")
	// ErrBadTimeSignature is an exported constant or variable used by the signing engine.
	// It reports a validated signature whose timestamp segment is malformed.
	ErrBadTimeSignature = errors.New("timestamp segment invalid")
	// ErrSignatureExpired is an exported constant or variable used by the signing engine.
	// It reports a signature and timestamp that are both valid but older
	// than the caller-supplied maximum age. Use [errors.As] with
	// [*ExpiredError] to recover the decoded timestamp.
	ErrSignatureExpired = errors.New("signature expired")
)

// ExpiredError carries the diagnostics of an expired-but-authentic
// signature: the embedded timestamp, the observed age, and the maximum age
// the caller allowed. It unwraps to [ErrSignatureExpired] so errors.Is
// matching keeps working.
//
// An expired token is authentic; callers commonly handle it differently
// from a forged one (re-issue instead of reject).
type ExpiredError struct {
	Timestamp time.Time
	Age       time.Duration
	MaxAge    time.Duration
}

// Error describes the error. The payload is never included.
func (e *ExpiredError) Error() string {
	return fmt.Sprintf("signature expired: age %s exceeds max age %s", e.Age, e.MaxAge)
}

// Unwrap links the error to [ErrSignatureExpired].
func (e *ExpiredError) Unwrap() error {
	return ErrSignatureExpired
}
