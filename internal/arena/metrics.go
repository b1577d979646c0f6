package arena

// SizeInUse returns the total number of bytes currently handed out.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (a *Arena) Capacity() int {
	return a.reserved
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Limit returns the configured byte limit, 0 if unlimited.
func (a *Arena) Limit() int {
	return a.limit
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Limit:       a.Limit(),
		Utilization: a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	SizeInUse   int     `yaml:"size_in_use"` // Bytes currently handed out
	Capacity    int     `yaml:"capacity"`    // Total capacity in bytes
	NumChunks   int     `yaml:"num_chunks"`  // Number of chunks
	ChunkSize   int     `yaml:"chunk_size"`  // Default chunk size
	Limit       int     `yaml:"limit"`       // Byte limit, 0 if unlimited
	Utilization float64 `yaml:"utilization"` // Ratio of used to total capacity (0.0-1.0)
}
