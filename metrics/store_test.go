package metrics

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func record(id, slot string, success bool, d time.Duration) RenderRecord {
	return RenderRecord{
		RequestID: id,
		Slot:      slot,
		Success:   success,
		Duration:  d,
		Timestamp: time.Now(),
	}
}

// TestStoreAggregates tests counter and average accumulation.
func TestStoreAggregates(t *testing.T) {
	store := NewStore(10, time.Now())

	store.RecordRender(record("1", "wide", true, 10*time.Millisecond))
	store.RecordRender(record("2", "wide", true, 30*time.Millisecond))
	store.RecordRender(record("3", "tall", false, 20*time.Millisecond))

	m := store.GetRenderMetrics()

	if m.TotalRenders != 3 {
		t.Errorf("TotalRenders = %d, want 3", m.TotalRenders)
	}
	if m.TotalSuccess != 2 {
		t.Errorf("TotalSuccess = %d, want 2", m.TotalSuccess)
	}
	if m.TotalErrors != 1 {
		t.Errorf("TotalErrors = %d, want 1", m.TotalErrors)
	}
	if m.AvgDuration != 20*time.Millisecond {
		t.Errorf("AvgDuration = %v, want 20ms", m.AvgDuration)
	}
	if m.PerSlot["wide"] != 2 {
		t.Errorf("PerSlot[wide] = %d, want 2", m.PerSlot["wide"])
	}
	if m.PerSlot["tall"] != 1 {
		t.Errorf("PerSlot[tall] = %d, want 1", m.PerSlot["tall"])
	}
}

// TestStoreEmptyMetrics tests the zero state.
func TestStoreEmptyMetrics(t *testing.T) {
	store := NewStore(10, time.Now())
	m := store.GetRenderMetrics()

	if m.TotalRenders != 0 || m.AvgDuration != 0 {
		t.Errorf("empty store metrics = %+v, want zeros", m)
	}
	if len(store.GetRecentRenders(5)) != 0 {
		t.Error("GetRecentRenders() on empty store returned records")
	}
}

// TestStoreRecentOrder tests newest-first ordering.
func TestStoreRecentOrder(t *testing.T) {
	store := NewStore(10, time.Now())
	for i := 1; i <= 4; i++ {
		store.RecordRender(record(fmt.Sprintf("%d", i), "wide", true, time.Millisecond))
	}

	recent := store.GetRecentRenders(3)
	if len(recent) != 3 {
		t.Fatalf("GetRecentRenders(3) returned %d records", len(recent))
	}

	for i, wantID := range []string{"4", "3", "2"} {
		if recent[i].RequestID != wantID {
			t.Errorf("recent[%d].RequestID = %q, want %q", i, recent[i].RequestID, wantID)
		}
	}
}

// TestStoreRingWraps tests history eviction at capacity.
func TestStoreRingWraps(t *testing.T) {
	store := NewStore(3, time.Now())
	for i := 1; i <= 5; i++ {
		store.RecordRender(record(fmt.Sprintf("%d", i), "wide", true, time.Millisecond))
	}

	recent := store.GetRecentRenders(0)
	if len(recent) != 3 {
		t.Fatalf("GetRecentRenders(0) returned %d records, want capacity 3", len(recent))
	}

	for i, wantID := range []string{"5", "4", "3"} {
		if recent[i].RequestID != wantID {
			t.Errorf("recent[%d].RequestID = %q, want %q", i, recent[i].RequestID, wantID)
		}
	}

	// Aggregates outlive the ring
	if m := store.GetRenderMetrics(); m.TotalRenders != 5 {
		t.Errorf("TotalRenders = %d, want 5", m.TotalRenders)
	}
}

// TestStoreCapacityFallback tests the default capacity.
func TestStoreCapacityFallback(t *testing.T) {
	store := NewStore(0, time.Now())
	if store.cap != DefaultHistoryCapacity {
		t.Errorf("cap = %d, want %d", store.cap, DefaultHistoryCapacity)
	}
}

// TestStoreConcurrent tests concurrent recording.
func TestStoreConcurrent(t *testing.T) {
	store := NewStore(50, time.Now())

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				store.RecordRender(record("x", "wide", true, time.Millisecond))
				store.GetRenderMetrics()
				store.GetRecentRenders(10)
			}
		}()
	}
	wg.Wait()

	if m := store.GetRenderMetrics(); m.TotalRenders != 200 {
		t.Errorf("TotalRenders = %d, want 200", m.TotalRenders)
	}
}
