package mmlog

import "time"

// MetricsHook is a minimal hook surface for write-path observations.
// Implementations must be safe for concurrent use and cheap: ObserveWrite
// runs inside the hot path of every accepted record.
type MetricsHook interface {
	// ObserveWrite is called once per record written, with the formatted
	// size in bytes and whether the write wrapped around the ring.
	ObserveWrite(bytes int, wrapped bool)
	// ObserveDrop is called when a record is rejected by the severity
	// filter before any formatting happens.
	ObserveDrop()
	// ObserveFlush is called after each flush with its duration.
	ObserveFlush(elapsed time.Duration)
}

// NoopMetrics is used when no metrics hook is provided.
type NoopMetrics struct{}

func (NoopMetrics) ObserveWrite(int, bool)     {}
func (NoopMetrics) ObserveDrop()               {}
func (NoopMetrics) ObserveFlush(time.Duration) {}
