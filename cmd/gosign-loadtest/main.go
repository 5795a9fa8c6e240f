package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goSign "github.com/MrEthical07/goSign"
	"github.com/MrEthical07/goSign/digest"
	"github.com/google/uuid"
)

func main() {
	var (
		tokens      = flag.Int("tokens", 100000, "number of signed tokens to seed")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (sign + unsign)")
		digestName  = flag.String("digest", string(digest.SHA1), "digest algorithm (sha1, sha256, sha512, blake2b-256, sha3-256)")
		timed       = flag.Bool("timed", false, "use the timestamp signer with a 1h max age")
	)
	flag.Parse()

	if *tokens <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "tokens, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	signer, err := goSign.New().
		WithSecret([]byte("loadtest-secret-key")).
		WithDigest(digest.Algorithm(*digestName)).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build signer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeding %d tokens (%s digest)...\n", *tokens, *digestName)
	startSeed := time.Now()
	payloads := make([][]byte, *tokens)
	signed := make([]string, *tokens)
	ts := signer.Timestamped()
	for i := range payloads {
		payloads[i] = []byte("sid=" + uuid.NewString())
		if *timed {
			signed[i] = ts.Sign(payloads[i])
		} else {
			signed[i] = signer.Sign(payloads[i])
		}
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	signStats := runPhase(*ops, *concurrency, func(r *rand.Rand) error {
		p := payloads[r.Intn(len(payloads))]
		if *timed {
			_ = ts.Sign(p)
		} else {
			_ = signer.Sign(p)
		}
		return nil
	})
	unsignStats := runPhase(*ops, *concurrency, func(r *rand.Rand) error {
		s := signed[r.Intn(len(signed))]
		if *timed {
			_, err := ts.Unsign(s, time.Hour)
			return err
		}
		_, err := signer.Unsign(s)
		return err
	})

	fmt.Println("---- results ----")
	printStats("sign", signStats)
	printStats("unsign", unsignStats)

	snap := signer.MetricsSnapshot()
	fmt.Printf("counters: sign=%d unsign=%d failures=%d expired=%d\n",
		snap.SignOps, snap.UnsignOps, snap.UnsignFailures, snap.ExpiredTokens)
}

func runPhase(ops, concurrency int, op func(*rand.Rand) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				err := op(r)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	return computeStats(time.Since(start), latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      samples[len(samples)*50/100],
		p95:      samples[len(samples)*95/100],
		p99:      samples[len(samples)*99/100],
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%-8s ops=%d failures=%d total=%s p50=%s p95=%s p99=%s rate=%.0f ops/s\n",
		name, s.ops, s.failures, s.total.Round(time.Millisecond),
		s.p50, s.p95, s.p99, s.opsPerS)
}
