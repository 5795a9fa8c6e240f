package goSign

import (
	"testing"
	"time"
)

func newBenchmarkSigner(b *testing.B) *Signer {
	b.Helper()
	s, err := New().WithSecret([]byte("benchmark-secret-key")).Build()
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	return s
}

func BenchmarkSign(b *testing.B) {
	s := newBenchmarkSigner(b)
	payload := []byte("uid=alice;role=admin;tenant=42")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sign(payload)
	}
}

func BenchmarkUnsign(b *testing.B) {
	s := newBenchmarkSigner(b)
	signed := s.Sign([]byte("uid=alice;role=admin;tenant=42"))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Unsign(signed); err != nil {
			b.Fatalf("Unsign: %v", err)
		}
	}
}

func BenchmarkUnsignSecondKey(b *testing.B) {
	old, err := New().WithSecret([]byte("old-secret")).Build()
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	rotated, err := New().WithSecrets([]byte("new-secret"), []byte("old-secret")).Build()
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	signed := old.Sign([]byte("uid=alice;role=admin;tenant=42"))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rotated.Unsign(signed); err != nil {
			b.Fatalf("Unsign: %v", err)
		}
	}
}

func BenchmarkTimestampSign(b *testing.B) {
	ts := newBenchmarkSigner(b).Timestamped()
	payload := []byte("uid=alice;role=admin;tenant=42")
	at := time.Unix(1_700_000_000, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ts.SignAt(payload, at)
	}
}

func BenchmarkTimestampUnsign(b *testing.B) {
	ts := newBenchmarkSigner(b).Timestamped()
	signed := ts.Sign([]byte("uid=alice;role=admin;tenant=42"))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ts.Unsign(signed, time.Hour); err != nil {
			b.Fatalf("Unsign: %v", err)
		}
	}
}
