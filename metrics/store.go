package metrics

import (
	"sync"
	"time"
)

// Store is the in-memory Collector implementation. Recent records are kept in
// a fixed-capacity ring buffer; aggregates are updated on every record.
type Store struct {
	mu sync.RWMutex

	// Ring buffer of recent renders
	history []RenderRecord
	cap     int
	head    int // write index
	size    int // current number of records

	// Aggregation
	totalRenders  int64
	totalSuccess  int64
	totalErrors   int64
	totalDuration time.Duration
	perSlot       map[string]int64

	startTime time.Time
}

// DefaultHistoryCapacity is the number of recent render records retained.
const DefaultHistoryCapacity = 100

// NewStore creates a Store retaining up to capacity recent records.
// A capacity below 1 falls back to DefaultHistoryCapacity.
func NewStore(capacity int, startTime time.Time) *Store {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}

	return &Store{
		history:   make([]RenderRecord, capacity),
		cap:       capacity,
		perSlot:   make(map[string]int64),
		startTime: startTime,
	}
}

// RecordRender logs a completed render request.
func (s *Store) RecordRender(rec RenderRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history[s.head] = rec
	s.head = (s.head + 1) % s.cap
	if s.size < s.cap {
		s.size++
	}

	s.totalRenders++
	if rec.Success {
		s.totalSuccess++
	} else {
		s.totalErrors++
	}
	s.totalDuration += rec.Duration
	s.perSlot[rec.Slot]++
}

// GetRenderMetrics returns aggregated render statistics.
func (s *Store) GetRenderMetrics() RenderMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := RenderMetrics{
		TotalRenders: s.totalRenders,
		TotalSuccess: s.totalSuccess,
		TotalErrors:  s.totalErrors,
		PerSlot:      make(map[string]int64, len(s.perSlot)),
		Uptime:       time.Since(s.startTime),
	}

	if s.totalRenders > 0 {
		m.AvgDuration = s.totalDuration / time.Duration(s.totalRenders)
	}
	for slot, count := range s.perSlot {
		m.PerSlot[slot] = count
	}

	return m
}

// GetRecentRenders returns the N most recent render records, newest first.
func (s *Store) GetRecentRenders(limit int) []RenderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit < 1 || limit > s.size {
		limit = s.size
	}

	out := make([]RenderRecord, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (s.head - 1 - i + s.cap*2) % s.cap
		out = append(out, s.history[idx])
	}
	return out
}
