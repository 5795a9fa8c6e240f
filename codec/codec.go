package codec

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
)

// Alphabet is the url-and-filename-safe base64 alphabet used for every
// segment of a signed string. Separators must be chosen outside of it.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var (
	// ErrAlphabet is returned when decoded text contains a character outside the url-safe alphabet.
	ErrAlphabet = errors.New("codec: character outside url-safe alphabet")
	// ErrLength is returned when decoded text has a length no unpadded base64
	// encoding can produce, or trailing bits no canonical encode emits.
	ErrLength = errors.New("codec: length not consistent with any padding")
	// ErrIntOverflow is returned when an encoded integer does not fit in 64 bits.
	ErrIntOverflow = errors.New("codec: integer overflow")
)

// Strict mode rejects non-zero trailing bits, so every accepted text has
// exactly one byte representation and Decode(Encode(b)) is a bijection.
var encoding = base64.RawURLEncoding.Strict()

var inAlphabet = func() [256]bool {
	var t [256]bool
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = true
	}
	return t
}()

// Encode encodes raw bytes as unpadded url-safe base64 text.
func Encode(data []byte) string {
	return encoding.EncodeToString(data)
}

// Decode reverses [Encode]. The padding that Encode strips is recovered
// from the input length; text whose length cannot correspond to any valid
// padding fails with [ErrLength], and text containing characters outside
// the url-safe alphabet fails with [ErrAlphabet].
func Decode(text string) ([]byte, error) {
	for i := 0; i < len(text); i++ {
		if !inAlphabet[text[i]] {
			return nil, ErrAlphabet
		}
	}
	// An unpadded base64 stream is never 1 (mod 4) characters long.
	if len(text)%4 == 1 {
		return nil, ErrLength
	}
	out, err := encoding.DecodeString(text)
	if err != nil {
		return nil, ErrLength
	}
	return out, nil
}

// EncodeInt encodes a non-negative integer as the unpadded url-safe base64
// of its big-endian byte representation with leading zero bytes stripped.
// EncodeInt(0) is the empty string.
func EncodeInt(n uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return encoding.EncodeToString(buf[i:])
}

// DecodeInt reverses [EncodeInt]. It fails with [ErrAlphabet] or [ErrLength]
// on malformed text and with [ErrIntOverflow] when the decoded value does
// not fit in a uint64. DecodeInt("") is 0.
func DecodeInt(text string) (uint64, error) {
	raw, err := Decode(text)
	if err != nil {
		return 0, err
	}
	if len(raw) > 8 {
		return 0, ErrIntOverflow
	}
	var n uint64
	for _, b := range raw {
		n = n<<8 | uint64(b)
	}
	return n, nil
}

// InAlphabet reports whether b is part of the url-safe base64 alphabet.
// Signer construction uses it to reject separators that would make
// segment splitting ambiguous.
func InAlphabet(b byte) bool {
	return inAlphabet[b]
}
