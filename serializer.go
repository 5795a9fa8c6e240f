package goSign

import (
	"encoding/json"
	"time"
)

// PayloadCodec is the collaborator interface that turns structured data
// into the opaque byte payload the engine signs, and back. The engine
// itself never assumes a particular serialization; [JSONCodec] is the
// default adapter.
type PayloadCodec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec defines a public type used by goSign APIs.
//
// JSONCodec adapts encoding/json to [PayloadCodec].
type JSONCodec struct{}

// Marshal implements [PayloadCodec].
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements [PayloadCodec].
func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Serializer defines a public type used by goSign APIs.
//
// Serializer is a thin convenience layer pairing a [Signer] with a
// [PayloadCodec]. Signing serializes the value and signs the resulting
// bytes; unsigning verifies first and only then deserializes, so codec
// code never runs on unauthenticated input.
type Serializer struct {
	signer *Signer
	codec  PayloadCodec
}

// NewSerializer describes the newserializer operation and its observable behavior.
//
// NewSerializer pairs a built Signer with a payload codec. A nil codec
// selects [JSONCodec].
func NewSerializer(s *Signer, c PayloadCodec) *Serializer {
	if c == nil {
		c = JSONCodec{}
	}
	return &Serializer{signer: s, codec: c}
}

// Sign describes the sign operation and its observable behavior.
//
// Sign serializes v and returns the signed string.
func (sz *Serializer) Sign(v any) (string, error) {
	payload, err := sz.codec.Marshal(v)
	if err != nil {
		return "", err
	}
	return sz.signer.Sign(payload), nil
}

// Unsign describes the unsign operation and its observable behavior.
//
// Unsign verifies the signed string and deserializes the recovered
// payload into v. Verification errors are returned unchanged so callers
// can distinguish them with errors.Is.
func (sz *Serializer) Unsign(signed string, v any) error {
	payload, err := sz.signer.Unsign(signed)
	if err != nil {
		return err
	}
	return sz.codec.Unmarshal(payload, v)
}

// TimedSerializer defines a public type used by goSign APIs.
//
// TimedSerializer is the [Serializer] counterpart for a
// [TimestampSigner].
type TimedSerializer struct {
	signer *TimestampSigner
	codec  PayloadCodec
}

// NewTimedSerializer describes the newtimedserializer operation and its observable behavior.
//
// NewTimedSerializer pairs a TimestampSigner with a payload codec. A nil
// codec selects [JSONCodec].
func NewTimedSerializer(t *TimestampSigner, c PayloadCodec) *TimedSerializer {
	if c == nil {
		c = JSONCodec{}
	}
	return &TimedSerializer{signer: t, codec: c}
}

// Sign describes the sign operation and its observable behavior.
//
// Sign serializes v and returns the signed string with the current time
// embedded.
func (sz *TimedSerializer) Sign(v any) (string, error) {
	payload, err := sz.codec.Marshal(v)
	if err != nil {
		return "", err
	}
	return sz.signer.Sign(payload), nil
}

// Unsign describes the unsign operation and its observable behavior.
//
// Unsign verifies the signed string, enforces maxAge when positive, and
// deserializes the recovered payload into v.
func (sz *TimedSerializer) Unsign(signed string, maxAge time.Duration, v any) error {
	payload, err := sz.signer.Unsign(signed, maxAge)
	if err != nil {
		return err
	}
	return sz.codec.Unmarshal(payload, v)
}
