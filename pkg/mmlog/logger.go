package mmlog

import (
	"time"

	"github.com/ClarkGuan/mmlog/internal/region"
	"github.com/ClarkGuan/mmlog/internal/spin"
)

// Logger writes formatted records into a memory-mapped ring file. It is
// safe for concurrent use by multiple goroutines of one process.
type Logger struct {
	region  *region.Region
	lock    spin.Lock
	level   Level
	sync    bool
	metrics MetricsHook
}

// Enabled reports whether records at the given severity pass the
// configured threshold. Callers that format messages lazily should check
// this before paying the formatting cost.
func (l *Logger) Enabled(level Level) bool {
	return level <= l.level
}

// Cap returns the payload ring capacity in bytes.
func (l *Logger) Cap() int { return l.region.Cap() }

// Log formats and appends one record. callsite is "file:line" or empty;
// target names the subsystem the record belongs to. Log never fails:
// records below the threshold are dropped, and a record longer than the
// ring capacity keeps only its final lap's bytes (the earlier portion is
// overwritten before the write completes).
func (l *Logger) Log(level Level, callsite, target, msg string) {
	if !l.Enabled(level) {
		l.metrics.ObserveDrop()
		return
	}
	rec := appendRecord(nil, time.Now(), threadID(), level, callsite, target, msg)
	l.write(rec)
}

// write copies p into the ring at the current offset, wrapping as needed,
// and persists the advanced offset. The offset read, the payload copy,
// and the offset update form one critical section under the spin lock.
func (l *Logger) write(p []byte) {
	ring := l.region.Payload()
	size := uint64(len(ring))
	n := uint64(len(p))

	l.lock.Lock()
	defer l.lock.Unlock()

	off := l.region.Offset()
	wrapped := off+n > size
	if !wrapped {
		copy(ring[off:], p)
		l.region.SetOffset(off + n)
	} else {
		head := size - off
		copy(ring[off:], p[:head])
		// The modulo keeps only the final lap of a record longer than
		// the whole ring.
		left := (n - head) % size
		copy(ring, p[n-left:])
		l.region.SetOffset(left)
	}
	l.metrics.ObserveWrite(len(p), wrapped)
}

// Flush pushes the mapped region to the backing file. It blocks until the
// data is durable when the Logger was built with Sync(true); otherwise
// the writeback is best-effort.
func (l *Logger) Flush() error {
	start := time.Now()
	if err := l.region.Sync(l.sync); err != nil {
		return err
	}
	l.metrics.ObserveFlush(time.Since(start))
	return nil
}

// Close flushes and unmaps the region. The Logger must not be used after
// Close. Calling Close twice is safe.
func (l *Logger) Close() error {
	if err := l.region.Sync(l.sync); err != nil {
		l.region.Close()
		return err
	}
	return l.region.Close()
}
