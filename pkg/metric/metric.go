package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements mmlog.MetricsHook on Prometheus counters.
type Collector struct {
	WritesTotal  prometheus.Counter
	BytesTotal   prometheus.Counter
	WrapsTotal   prometheus.Counter
	DropsTotal   prometheus.Counter
	FlushesTotal prometheus.Counter
	FlushSeconds prometheus.Histogram
}

// NewCollector creates a Collector with all write-path metrics.
func NewCollector() *Collector {
	return &Collector{
		WritesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mmlog",
			Subsystem: "ring",
			Name:      "writes_total",
			Help:      "Total number of records written to the ring",
		}),
		BytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mmlog",
			Subsystem: "ring",
			Name:      "bytes_total",
			Help:      "Total formatted bytes written to the ring",
		}),
		WrapsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mmlog",
			Subsystem: "ring",
			Name:      "wraps_total",
			Help:      "Total number of writes that wrapped around the ring",
		}),
		DropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mmlog",
			Subsystem: "ring",
			Name:      "drops_total",
			Help:      "Total records rejected by the severity filter",
		}),
		FlushesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mmlog",
			Subsystem: "ring",
			Name:      "flushes_total",
			Help:      "Total number of flushes issued",
		}),
		FlushSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mmlog",
			Subsystem: "ring",
			Name:      "flush_duration_seconds",
			Help:      "Flush latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
}

// Register registers all metrics with the given registerer.
func (c *Collector) Register(r prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{
		c.WritesTotal, c.BytesTotal, c.WrapsTotal,
		c.DropsTotal, c.FlushesTotal, c.FlushSeconds,
	} {
		if err := r.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// ObserveWrite implements mmlog.MetricsHook.
func (c *Collector) ObserveWrite(bytes int, wrapped bool) {
	c.WritesTotal.Inc()
	c.BytesTotal.Add(float64(bytes))
	if wrapped {
		c.WrapsTotal.Inc()
	}
}

// ObserveDrop implements mmlog.MetricsHook.
func (c *Collector) ObserveDrop() { c.DropsTotal.Inc() }

// ObserveFlush implements mmlog.MetricsHook.
func (c *Collector) ObserveFlush(elapsed time.Duration) {
	c.FlushesTotal.Inc()
	c.FlushSeconds.Observe(elapsed.Seconds())
}
