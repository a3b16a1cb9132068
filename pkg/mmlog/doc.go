// Package mmlog is a log sink backed by a memory-mapped ring file.
//
// # Overview
//
// A Logger maps a fixed-size file into memory and appends formatted text
// records into a circular payload region, overwriting the oldest bytes
// once the ring is full. The write path performs no syscalls: records are
// plain memory copies into the shared mapping, serialized by a spin lock.
// Disk usage is bounded by construction and never grows.
//
// The first 8 bytes of the file hold the next write offset; the rest is
// the ring. Records carry no framing beyond a trailing newline, so a
// reader must tolerate one partially overwritten record at the wrap
// boundary (see ReadSnapshot).
//
// Quick start
//
//	logger, err := mmlog.NewBuilder().
//	    Size(4 * mmlog.MB).
//	    Level(mmlog.LevelDebug).
//	    Sync(true).
//	    Build("/tmp/app.mmlog")
//	if err != nil {
//	    // no logging available; caller decides whether that is fatal
//	}
//	defer logger.Close()
//
//	logger.Log(mmlog.LevelInfo, "", "app", "service started")
//
// To route the standard library's structured logging into the ring, wrap
// the Logger in a Handler:
//
//	slog.SetDefault(slog.New(mmlog.NewHandler(logger, "app")))
//
// # Concurrency
//
// One Logger may be shared across any number of goroutines of a single
// process; writes are totally ordered by lock acquisition and never
// interleave within a record. Mapping the same file from several
// processes at once is not coordinated and will corrupt the offset.
package mmlog
