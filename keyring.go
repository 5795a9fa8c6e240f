package goSign

// SecretKey defines a public type used by goSign APIs.
//
// SecretKey wraps long-term secret material. It is immutable once handed to
// [Builder.Build] and must never be logged: String and GoString redact the
// bytes so a SecretKey cannot leak through %v, %s, or %#v formatting.
// SecretKey values are never compared directly; the only comparison path
// is the constant-time signature verification inside [Signer.Unsign].
type SecretKey []byte

// String redacts the secret bytes.
func (SecretKey) String() string {
	return "goSign.SecretKey(redacted)"
}

// GoString redacts the secret bytes.
func (SecretKey) GoString() string {
	return "goSign.SecretKey(redacted)"
}

// keyRing is the ordered rotation list, newest first. Index 0 signs;
// unsigning tries each entry in order and stops at the first success.
// The ring is non-empty by construction (validated in Build) and there is
// no implicit expiry of old entries.
type keyRing []SecretKey

func newKeyRing(secrets [][]byte) keyRing {
	ring := make(keyRing, len(secrets))
	for i, s := range secrets {
		k := make(SecretKey, len(s))
		copy(k, s)
		ring[i] = k
	}
	return ring
}
