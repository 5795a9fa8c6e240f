package digest

import (
	"errors"
	"testing"
)

func TestNewResolvesSupportedAlgorithms(t *testing.T) {
	sizes := map[Algorithm]int{
		SHA1:       20,
		SHA256:     32,
		SHA512:     64,
		BLAKE2b256: 32,
		SHA3256:    32,
	}
	for alg, size := range sizes {
		newHash, err := alg.New()
		if err != nil {
			t.Fatalf("%s: %v", alg, err)
		}
		h := newHash()
		if h.Size() != size {
			t.Fatalf("%s: size = %d, want %d", alg, h.Size(), size)
		}
	}
}

func TestNewRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := Algorithm("md5").New(); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("error = %v, want ErrUnknownAlgorithm", err)
	}
	if Algorithm("md5").Valid() {
		t.Fatal("md5 reported valid")
	}
}
