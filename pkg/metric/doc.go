// Package metric provides a Prometheus implementation of the mmlog
// write-path metrics hook.
//
// # Overview
//
// Collector counts written records and bytes, ring wraparounds, records
// dropped by the severity filter, and flushes. Wire it in through the
// Builder and register it with a prometheus.Registerer:
//
//	c := metric.NewCollector()
//	if err := c.Register(prometheus.DefaultRegisterer); err != nil { ... }
//	logger, err := mmlog.NewBuilder().Metrics(c).Build(path)
package metric
