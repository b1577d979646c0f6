package strutils

import "github.com/pavanmanishd/strutils/internal/arena"

// RegistryMetrics describes one registry.
type RegistryMetrics struct {
	Occupancy int `yaml:"occupancy"`
	Capacity  int `yaml:"capacity"`
}

// Metrics is a snapshot of a Context's registries and backing arena.
type Metrics struct {
	Epoch     string          `yaml:"epoch"`
	Released  bool            `yaml:"released"`
	Sequences RegistryMetrics `yaml:"sequences"`
	Lists     RegistryMetrics `yaml:"lists"`
	Arena     arena.Metrics   `yaml:"arena"`
}

// Metrics returns a snapshot of the Context. A released Context reports
// empty registries.
func (c *Context) Metrics() Metrics {
	m := Metrics{
		Epoch:    c.epoch.String(),
		Released: c.released,
		Arena:    c.arena.Metrics(),
	}
	if c.released {
		return m
	}
	m.Sequences = RegistryMetrics{Occupancy: c.seqs.Occupancy, Capacity: c.seqs.Capacity}
	m.Lists = RegistryMetrics{Occupancy: c.lists.Occupancy, Capacity: c.lists.Capacity}
	return m
}
