package digest

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies a digest used for key derivation and signature
// computation. The identifier is part of the signing contract: two signer
// instances sharing secrets must configure the same Algorithm to produce
// interoperable signatures.
type Algorithm string

const (
	// SHA1 is the default digest, kept for compatibility with signatures produced by legacy peers.
	SHA1 Algorithm = "sha1"
	// SHA256 selects SHA-256.
	SHA256 Algorithm = "sha256"
	// SHA512 selects SHA-512.
	SHA512 Algorithm = "sha512"
	// BLAKE2b256 selects BLAKE2b with a 256-bit output.
	BLAKE2b256 Algorithm = "blake2b-256"
	// SHA3256 selects SHA3-256.
	SHA3256 Algorithm = "sha3-256"
)

// ErrUnknownAlgorithm is returned by New for an identifier outside the supported set.
var ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

// New resolves the algorithm to a hash constructor suitable for crypto/hmac.
// Resolution happens once at signer construction; an unknown identifier is
// a configuration error, never a sign/unsign-time failure.
func (a Algorithm) New() (func() hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New, nil
	case SHA256:
		return sha256.New, nil
	case SHA512:
		return sha512.New, nil
	case BLAKE2b256:
		return newBlake2b256, nil
	case SHA3256:
		return sha3.New256, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// Valid reports whether the identifier is part of the supported set.
func (a Algorithm) Valid() bool {
	_, err := a.New()
	return err == nil
}

func newBlake2b256() hash.Hash {
	// blake2b.New256 only errors for oversized keys; unkeyed cannot fail.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}
