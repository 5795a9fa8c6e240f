package goSign

import (
	"errors"

	"github.com/MrEthical07/goSign/derive"
	"github.com/MrEthical07/goSign/digest"
)

// Builder defines a public type used by goSign APIs.
//
// Builder instances are intended to be configured during initialization and
// then treated as immutable unless documented otherwise. A Builder is
// single-use: Build validates the configuration once and hands out an
// immutable [Signer].
type Builder struct {
	config Config
	built  bool
}

// New describes the new operation and its observable behavior.
//
// New returns a Builder primed with [DefaultConfig]. It never returns an
// error; validation happens in [Builder.Build].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig replaces the entire configuration. The config is deep-copied,
// so the caller keeps ownership of the passed slices.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithSecret describes the withsecret operation and its observable behavior.
//
// WithSecret configures a single-entry key ring. It is shorthand for
// [Builder.WithSecrets] with one element.
func (b *Builder) WithSecret(secret []byte) *Builder {
	return b.WithSecrets(secret)
}

// WithSecrets describes the withsecrets operation and its observable behavior.
//
// WithSecrets configures the rotation list, newest first. Signing always
// uses the first secret; unsigning tries each in order.
func (b *Builder) WithSecrets(secrets ...[]byte) *Builder {
	b.config.Secrets = secrets
	return b
}

// WithSalt describes the withsalt operation and its observable behavior.
//
// WithSalt overrides the default namespacing salt.
func (b *Builder) WithSalt(salt []byte) *Builder {
	b.config.Salt = salt
	return b
}

// WithSeparator describes the withseparator operation and its observable behavior.
//
// WithSeparator overrides the default '.' separator. Bytes inside the
// codec alphabet are rejected by Build, never at sign/unsign time.
func (b *Builder) WithSeparator(sep byte) *Builder {
	b.config.Separator = sep
	return b
}

// WithDerivation describes the withderivation operation and its observable behavior.
//
// WithDerivation selects the key derivation method.
func (b *Builder) WithDerivation(m derive.Method) *Builder {
	b.config.Derivation = m
	return b
}

// WithDigest describes the withdigest operation and its observable behavior.
//
// WithDigest selects the digest algorithm.
func (b *Builder) WithDigest(a digest.Algorithm) *Builder {
	b.config.Digest = a
	return b
}

// WithEpochOffset describes the withepochoffset operation and its observable behavior.
//
// WithEpochOffset shifts embedded timestamps by the given number of
// seconds. It must match across signer instances sharing secrets.
func (b *Builder) WithEpochOffset(seconds int64) *Builder {
	b.config.EpochOffset = seconds
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled toggles the operation counters exposed through
// [Signer.MetricsSnapshot].
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build validates the configuration and returns an immutable [Signer].
// Validation errors never include secret material. A Builder may only be
// built once.
func (b *Builder) Build() (*Signer, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	newHash, err := cfg.Digest.New()
	if err != nil {
		return nil, err
	}

	b.built = true
	return &Signer{
		keys:        newKeyRing(cfg.Secrets),
		salt:        cfg.Salt,
		sep:         cfg.Separator,
		sepText:     string([]byte{cfg.Separator}),
		derivation:  cfg.Derivation,
		newHash:     newHash,
		epochOffset: cfg.EpochOffset,
		metrics:     NewMetrics(cfg.Metrics),
	}, nil
}
