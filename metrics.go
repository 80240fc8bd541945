package vbpool

import "github.com/prometheus/client_golang/prometheus"

// Collector exports pool stats as Prometheus metrics.
//
// Stats are read on every scrape, which happens on the registry's goroutine.
// Use a LockedPool when the collected pool is in use while metrics are gathered.
type Collector struct {
	pool     Pooler
	slabs    *prometheus.Desc
	capacity *prometheus.Desc
	free     *prometheus.Desc
	inUse    *prometheus.Desc
	grows    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for pool. Metric names are prefixed with
// namespace, and constLabels are attached to every metric.
func NewCollector(pool Pooler, namespace string, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vertex_buffer_pool", name),
			help,
			nil,
			constLabels,
		)
	}
	return &Collector{
		pool:     pool,
		slabs:    desc("slabs", "Number of record slabs owned by the pool."),
		capacity: desc("records", "Total number of records owned by the pool."),
		free:     desc("records_free", "Number of records available for acquire."),
		inUse:    desc("records_in_use", "Number of records currently acquired."),
		grows:    desc("grows_total", "Number of slabs allocated on an exhausted pool."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.slabs
	ch <- c.capacity
	ch <- c.free
	ch <- c.inUse
	ch <- c.grows
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stats()
	ch <- prometheus.MustNewConstMetric(c.slabs, prometheus.GaugeValue, float64(s.Slabs))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
	ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(s.Free))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(s.InUse))
	ch <- prometheus.MustNewConstMetric(c.grows, prometheus.CounterValue, float64(s.Grows))
}
