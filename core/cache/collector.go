package cache

import (
	"github.com/prometheus/client_golang/prometheus"
)

const promSubsystem = "resolution_cache"

// StatsSource is anything that can report cache statistics.
type StatsSource interface {
	Stats() Stats
}

// Collector exports cache statistics as Prometheus metrics.
// Values are read from the source on every scrape.
type Collector struct {
	source StatsSource

	hits          *prometheus.Desc
	misses        *prometheus.Desc
	evictions     *prometheus.Desc
	invalidations *prometheus.Desc
	entries       *prometheus.Desc
	capacity      *prometheus.Desc
}

// NewCollector creates a collector for source, prefixing metric names with
// namespace.
func NewCollector(namespace string, source StatsSource) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, promSubsystem, name), help, nil, nil)
	}

	return &Collector{
		source:        source,
		hits:          desc("hits_total", "The total of resolutions served from the cache."),
		misses:        desc("misses_total", "The total of resolutions computed on a cache miss."),
		evictions:     desc("evictions_total", "The total of entries evicted to respect capacity."),
		invalidations: desc("invalidations_total", "The total of full invalidations."),
		entries:       desc("entries", "Number of cached resolutions."),
		capacity:      desc("capacity", "Maximum number of cached resolutions."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.invalidations
	ch <- c.entries
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.invalidations, prometheus.CounterValue, float64(s.Invalidations))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Size))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
}
