package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability without external dependencies.
// Uses atomic operations for thread-safety.
type Metrics struct {
	// Counters
	fetchesTotal atomic.Uint64
	fetchErrors  atomic.Uint64
	iconsSynced  atomic.Uint64
	iconErrors   atomic.Uint64
	refreshes    atomic.Uint64

	// Latency tracking
	fetchLatencySumNs atomic.Int64
	fetchLatencyCount atomic.Uint64

	// Gauges
	recordsLoaded atomic.Int64
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordFetch records a markets fetch with its latency and outcome.
func (m *Metrics) RecordFetch(latency time.Duration, err error) {
	m.fetchesTotal.Add(1)
	m.fetchLatencySumNs.Add(latency.Nanoseconds())
	m.fetchLatencyCount.Add(1)
	if err != nil {
		m.fetchErrors.Add(1)
	}
}

// SetRecordsLoaded sets the number of records held by the dashboard.
func (m *Metrics) SetRecordsLoaded(n int) {
	m.recordsLoaded.Store(int64(n))
}

// RecordIconSynced records a mirrored icon.
func (m *Metrics) RecordIconSynced() {
	m.iconsSynced.Add(1)
}

// RecordIconError records a failed icon download.
func (m *Metrics) RecordIconError() {
	m.iconErrors.Add(1)
}

// RecordRefresh records a view refresh.
func (m *Metrics) RecordRefresh() {
	m.refreshes.Add(1)
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	FetchesTotal      uint64
	FetchErrors       uint64
	AvgFetchLatencyNs int64
	RecordsLoaded     int64
	IconsSynced       uint64
	IconErrors        uint64
	Refreshes         uint64
	Timestamp         time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgLatency int64
	count := m.fetchLatencyCount.Load()
	if count > 0 {
		avgLatency = m.fetchLatencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		FetchesTotal:      m.fetchesTotal.Load(),
		FetchErrors:       m.fetchErrors.Load(),
		AvgFetchLatencyNs: avgLatency,
		RecordsLoaded:     m.recordsLoaded.Load(),
		IconsSynced:       m.iconsSynced.Load(),
		IconErrors:        m.iconErrors.Load(),
		Refreshes:         m.refreshes.Load(),
		Timestamp:         time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.fetchesTotal.Store(0)
	m.fetchErrors.Store(0)
	m.iconsSynced.Store(0)
	m.iconErrors.Store(0)
	m.refreshes.Store(0)
	m.fetchLatencySumNs.Store(0)
	m.fetchLatencyCount.Store(0)
	m.recordsLoaded.Store(0)
}
