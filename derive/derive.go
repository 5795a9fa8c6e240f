package derive

import (
	"crypto/hmac"
	"hash"
)

// Method selects how a secret and salt combine into a derived signing key.
// The method is part of the signing contract: peers sharing secrets must
// configure the same Method to produce interoperable signatures.
type Method string

const (
	// Concat derives digest(salt ++ secret).
	Concat Method = "concat"
	// NamespacedConcat derives digest(salt ++ "signer" ++ secret). The fixed
	// namespace literal reproduces a legacy scheme so signatures remain
	// interoperable with namespace-aware peers.
	NamespacedConcat Method = "namespaced-concat"
	// HMAC derives hmac<digest>(key=secret, message=salt).
	HMAC Method = "hmac"
)

// namespace is the fixed literal mixed in by NamespacedConcat. Changing it
// would silently invalidate every signature issued by namespace-aware peers.
const namespace = "signer"

// Valid reports whether the identifier is part of the supported set.
func (m Method) Valid() bool {
	switch m {
	case Concat, NamespacedConcat, HMAC:
		return true
	}
	return false
}

// Key derives the signing key for one sign or unsign call. It is a pure
// function of its inputs and has no error conditions; the method is
// validated at signer construction and an unknown value here panics.
func Key(m Method, newHash func() hash.Hash, secret, salt []byte) []byte {
	switch m {
	case Concat:
		h := newHash()
		h.Write(salt)
		h.Write(secret)
		return h.Sum(nil)
	case NamespacedConcat:
		h := newHash()
		h.Write(salt)
		h.Write([]byte(namespace))
		h.Write(secret)
		return h.Sum(nil)
	case HMAC:
		mac := hmac.New(newHash, secret)
		mac.Write(salt)
		return mac.Sum(nil)
	default:
		panic("derive: unknown method " + string(m))
	}
}
