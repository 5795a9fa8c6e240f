package goSign

import "sync/atomic"

// MetricID defines a public type used by goSign APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint8

const (
	// MetricSign is an exported constant or variable used by the signing engine.
	MetricSign MetricID = iota
	// MetricUnsign is an exported constant or variable used by the signing engine.
	MetricUnsign
	// MetricUnsignFailure is an exported constant or variable used by the signing engine.
	MetricUnsignFailure
	// MetricExpired is an exported constant or variable used by the signing engine.
	MetricExpired
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics defines a public type used by goSign APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// Counters are plain atomic increments; a disabled or nil Metrics makes
// every operation a no-op so the hot path carries no conditional cost
// beyond one predictable branch.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot defines a public type used by goSign APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	SignOps        uint64
	UnsignOps      uint64
	UnsignFailures uint64
	ExpiredTokens  uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics returns nil when metrics are disabled; all Metrics methods
// tolerate a nil receiver.
func NewMetrics(cfg MetricsConfig) *Metrics {
	if !cfg.Enabled {
		return nil
	}
	return &Metrics{enabled: true}
}

// Inc describes the inc operation and its observable behavior.
//
// Inc atomically increments one counter. Safe on a nil receiver.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value describes the value operation and its observable behavior.
//
// Value returns one counter. Safe on a nil receiver.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot returns a point-in-time copy of all counters. Safe on a nil
// receiver, in which case all values are zero.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		SignOps:        m.Value(MetricSign),
		UnsignOps:      m.Value(MetricUnsign),
		UnsignFailures: m.Value(MetricUnsignFailure),
		ExpiredTokens:  m.Value(MetricExpired),
	}
}
