package strutils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Context's Metrics as Prometheus gauges.
//
// Example:
//
//	ctx := strutils.New()
//	prometheus.MustRegister(strutils.NewCollector(ctx, "myapp"))
type Collector struct {
	source func() Metrics

	occupancy  *prometheus.Desc
	capacity   *prometheus.Desc
	arenaBytes *prometheus.Desc
	chunks     *prometheus.Desc
	released   *prometheus.Desc
}

// NewCollector creates a Collector reading from c. The Collector reads c on
// every scrape, so scrapes must not run concurrently with other use of c
// unless c is wrapped in a SafeContext (see SafeContext.Collector).
func NewCollector(c *Context, namespace string) *Collector {
	return newCollector(c.Metrics, namespace)
}

func newCollector(source func() Metrics, namespace string) *Collector {
	return &Collector{
		source: source,
		occupancy: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "strutils", "registry_occupancy"),
			"Live handles in a registry.",
			[]string{"registry"}, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "strutils", "registry_capacity"),
			"Current capacity of a registry.",
			[]string{"registry"}, nil,
		),
		arenaBytes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "strutils", "arena_bytes"),
			"Arena bytes by state.",
			[]string{"state"}, nil,
		),
		chunks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "strutils", "arena_chunks"),
			"Chunks held by the arena.",
			nil, nil,
		),
		released: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "strutils", "released"),
			"1 if the context is released.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.occupancy
	ch <- c.capacity
	ch <- c.arenaBytes
	ch <- c.chunks
	ch <- c.released
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.source()
	ch <- prometheus.MustNewConstMetric(c.occupancy, prometheus.GaugeValue, float64(m.Sequences.Occupancy), "sequences")
	ch <- prometheus.MustNewConstMetric(c.occupancy, prometheus.GaugeValue, float64(m.Lists.Occupancy), "lists")
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Sequences.Capacity), "sequences")
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Lists.Capacity), "lists")
	ch <- prometheus.MustNewConstMetric(c.arenaBytes, prometheus.GaugeValue, float64(m.Arena.SizeInUse), "in_use")
	ch <- prometheus.MustNewConstMetric(c.arenaBytes, prometheus.GaugeValue, float64(m.Arena.Capacity), "reserved")
	ch <- prometheus.MustNewConstMetric(c.chunks, prometheus.GaugeValue, float64(m.Arena.NumChunks))
	released := 0.0
	if m.Released {
		released = 1
	}
	ch <- prometheus.MustNewConstMetric(c.released, prometheus.GaugeValue, released)
}
