// Package metrics provides in-memory render statistics: per-request records,
// aggregate counters, and per-slot usage counts.
package metrics

import (
	"time"
)

// RenderRecord captures the outcome of a single render request.
type RenderRecord struct {
	// RequestID is the uuid assigned to the request by the router
	RequestID string

	// Slot is the display name of the slot that was rendered
	Slot string

	// Success is true when the request produced an image
	Success bool

	// Error holds the failure classification for unsuccessful renders
	Error string

	// Duration is the wall-clock time of compose + render
	Duration time.Duration

	// Timestamp is when the request completed
	Timestamp time.Time
}

// RenderMetrics is the aggregate view over all recorded renders.
type RenderMetrics struct {
	TotalRenders int64
	TotalSuccess int64
	TotalErrors  int64

	// AvgDuration is the mean duration over all recorded renders
	AvgDuration time.Duration

	// PerSlot counts renders by slot display name
	PerSlot map[string]int64

	// Uptime is the time elapsed since the store was created
	Uptime time.Duration
}

// Collector is the interface the router records render outcomes through.
// Implementations must be safe for concurrent use.
type Collector interface {
	// RecordRender logs a completed render request.
	RecordRender(rec RenderRecord)

	// GetRenderMetrics returns aggregated render statistics.
	GetRenderMetrics() RenderMetrics

	// GetRecentRenders returns the N most recent render records,
	// newest first.
	GetRecentRenders(limit int) []RenderRecord
}
