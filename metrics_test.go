package goSign

import (
	"sync"
	"testing"
	"time"
)

func TestMetricsCountOperations(t *testing.T) {
	s := newTestSigner(t, func(b *Builder) { b.WithMetricsEnabled(true) })

	signed := s.Sign([]byte("payload"))
	if _, err := s.Unsign(signed); err != nil {
		t.Fatalf("Unsign: %v", err)
	}
	if _, err := s.Unsign("not-a-signed-value"); err == nil {
		t.Fatal("expected failure")
	}

	snap := s.MetricsSnapshot()
	if snap.SignOps != 1 {
		t.Fatalf("SignOps = %d, want 1", snap.SignOps)
	}
	if snap.UnsignOps != 1 {
		t.Fatalf("UnsignOps = %d, want 1", snap.UnsignOps)
	}
	if snap.UnsignFailures != 1 {
		t.Fatalf("UnsignFailures = %d, want 1", snap.UnsignFailures)
	}
}

func TestMetricsCountExpired(t *testing.T) {
	ts := newTestTimestampSigner(t, func(b *Builder) { b.WithMetricsEnabled(true) })

	signedAt := time.Unix(1_700_000_000, 0)
	signed := ts.SignAt([]byte("payload"), signedAt)

	ts.now = func() time.Time { return signedAt.Add(time.Hour) }
	if _, err := ts.Unsign(signed, time.Minute); err == nil {
		t.Fatal("expected expiry")
	}

	snap := ts.MetricsSnapshot()
	if snap.ExpiredTokens != 1 {
		t.Fatalf("ExpiredTokens = %d, want 1", snap.ExpiredTokens)
	}
}

func TestMetricsDisabledStaysZero(t *testing.T) {
	s := newTestSigner(t, nil)
	_ = s.Sign([]byte("payload"))

	snap := s.MetricsSnapshot()
	if snap != (MetricsSnapshot{}) {
		t.Fatalf("snapshot = %+v, want zero values", snap)
	}
}

func TestMetricsConcurrentIncrements(t *testing.T) {
	s := newTestSigner(t, func(b *Builder) { b.WithMetricsEnabled(true) })

	const workers = 8
	const perWorker = 250

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = s.Sign([]byte("payload"))
			}
		}()
	}
	wg.Wait()

	if got := s.MetricsSnapshot().SignOps; got != workers*perWorker {
		t.Fatalf("SignOps = %d, want %d", got, workers*perWorker)
	}
}
