package goSign

import (
	"errors"
	"fmt"

	"github.com/MrEthical07/goSign/codec"
	"github.com/MrEthical07/goSign/derive"
	"github.com/MrEthical07/goSign/digest"
)

// Config defines a public type used by goSign APIs.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise. Every field that
// affects the wire format (Salt, Separator, Derivation, Digest,
// EpochOffset) is part of the signing contract: signer instances sharing
// secrets must agree on all of them to interoperate.
type Config struct {
	// Secrets is the ordered rotation list, newest first. Signing always
	// uses Secrets[0]; unsigning tries each in order. Required, non-empty.
	Secrets [][]byte

	// Salt namespaces signatures so the same secret yields different
	// derived keys for different purposes. Reusing one salt across parts
	// of an application where the same signed value means different
	// things is a security risk.
	Salt []byte

	// Separator joins the payload, timestamp, and signature segments.
	// It must be a byte outside the codec alphabet; Build rejects
	// violations so splitting is never ambiguous at unsign time.
	Separator byte

	// Derivation selects how secret and salt combine into a signing key.
	Derivation derive.Method

	// Digest selects the hash used for derivation and HMAC computation.
	Digest digest.Algorithm

	// EpochOffset shifts embedded timestamps: the wire value is Unix
	// seconds minus EpochOffset. It must be fixed per key ring so
	// timestamps stay interoperable across signer instances.
	EpochOffset int64

	// Metrics configures the optional operation counters.
	Metrics MetricsConfig
}

// MetricsConfig defines a public type used by goSign APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

/*
====================================
DEFAULTS
====================================
*/

// DefaultSalt namespaces signatures produced with the default configuration.
const DefaultSalt = "goSign.Signer"

// DefaultSeparator is the byte joining signed-string segments.
const DefaultSeparator byte = '.'

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig returns the configuration every Builder starts from: the
// default salt, the '.' separator, namespaced-concat derivation, and the
// SHA-1 digest for compatibility with signatures produced by legacy peers.
// Secrets are intentionally absent and must be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Salt:       []byte(DefaultSalt),
		Separator:  DefaultSeparator,
		Derivation: derive.NamespacedConcat,
		Digest:     digest.SHA1,
	}
}

/*
====================================
VALIDATION
====================================
*/

func validateConfig(cfg Config) error {
	if len(cfg.Secrets) == 0 {
		return errors.New("at least one secret is required")
	}
	for i, s := range cfg.Secrets {
		if len(s) == 0 {
			return fmt.Errorf("secret at index %d is empty", i)
		}
	}
	if len(cfg.Salt) == 0 {
		return errors.New("salt must not be empty")
	}
	if codec.InAlphabet(cfg.Separator) {
		return fmt.Errorf("separator %q collides with the codec alphabet", cfg.Separator)
	}
	if !cfg.Derivation.Valid() {
		return fmt.Errorf("unknown derivation method %q", cfg.Derivation)
	}
	if !cfg.Digest.Valid() {
		return fmt.Errorf("unknown digest algorithm %q", cfg.Digest)
	}
	if cfg.EpochOffset < 0 {
		return errors.New("epoch offset must not be negative")
	}
	return nil
}

// cloneConfig deep-copies the byte fields so later caller mutation of the
// original slices cannot reach a built signer.
func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Salt != nil {
		out.Salt = append([]byte(nil), cfg.Salt...)
	}
	if cfg.Secrets != nil {
		out.Secrets = make([][]byte, len(cfg.Secrets))
		for i, s := range cfg.Secrets {
			out.Secrets[i] = append([]byte(nil), s...)
		}
	}
	return out
}
