package arena

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a := New(1024)

	// Test initial state
	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() != 0 {
		t.Errorf("Initial NumChunks = %d, want 0", a.NumChunks())
	}
	if a.ChunkSize() != 1024 {
		t.Errorf("ChunkSize = %d, want 1024", a.ChunkSize())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	a.Alloc(100)
	a.Alloc(200)

	if got := a.SizeInUse(); got != 300 {
		t.Errorf("SizeInUse = %d, want 300", got)
	}
	if a.Capacity() != 1024 {
		t.Errorf("Capacity = %d, want 1024", a.Capacity())
	}

	utilization := a.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}

	// Force chunk growth
	a.Alloc(2000)
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after growth = %d, want 2", a.NumChunks())
	}
	if a.Capacity() != 1024+2000 {
		t.Errorf("Capacity after growth = %d, want %d", a.Capacity(), 1024+2000)
	}

	m := a.Metrics()
	if m.SizeInUse != a.SizeInUse() || m.Capacity != a.Capacity() || m.NumChunks != 2 || m.ChunkSize != 1024 {
		t.Errorf("Metrics() = %+v, inconsistent with accessors", m)
	}
}

func TestArenaMetricsLimit(t *testing.T) {
	if got := New(64).Metrics().Limit; got != 0 {
		t.Errorf("Metrics().Limit without limit = %d, want 0", got)
	}
	a := New(64, WithLimit(256))
	if got := a.Metrics().Limit; got != 256 {
		t.Errorf("Metrics().Limit = %d, want 256", got)
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a := New(1024)
	a.Alloc(100)
	a.Release()

	m := a.Metrics()
	if m.SizeInUse != 0 || m.Capacity != 0 || m.NumChunks != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want zeroed", m)
	}
}
