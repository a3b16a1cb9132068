package mmlog

import "github.com/ClarkGuan/mmlog/internal/region"

// Size units.
const (
	KB = 1024
	MB = 1024 * KB
)

// HeaderSize is the width of the offset header at the start of a log
// file; on-disk size is always HeaderSize plus the ring capacity.
const HeaderSize = region.HeaderSize

// MinSize is the smallest usable ring capacity. Requests below it are
// silently raised, not rejected.
const MinSize = 512 * KB

// Builder collects Logger configuration. Setters have no side effects
// until Build or Open is called.
type Builder struct {
	size    int
	level   Level
	sync    bool
	metrics MetricsHook
}

// NewBuilder returns a Builder with the defaults: MinSize capacity,
// LevelInfo threshold, asynchronous flushes.
func NewBuilder() *Builder {
	return &Builder{
		size:  MinSize,
		level: LevelInfo,
	}
}

// Size sets the requested payload capacity in bytes.
func (b *Builder) Size(n int) *Builder {
	b.size = n
	return b
}

// Level sets the minimum severity that will be written.
func (b *Builder) Level(l Level) *Builder {
	b.level = l
	return b
}

// Sync controls durability: when enabled, Flush blocks until the data is
// on stable storage instead of scheduling a best-effort writeback.
func (b *Builder) Sync(enabled bool) *Builder {
	b.sync = enabled
	return b
}

// Metrics sets an optional hook observing writes, drops, and flushes.
func (b *Builder) Metrics(h MetricsHook) *Builder {
	b.metrics = h
	return b
}

// Build creates (or truncates) the file at path and returns a fresh
// Logger with the write offset reset to zero.
func (b *Builder) Build(path string) (*Logger, error) {
	return b.construct(path, true)
}

// Open maps an existing file at path, preserving its offset and content,
// so logging resumes where a previous process left off.
func (b *Builder) Open(path string) (*Logger, error) {
	return b.construct(path, false)
}

func (b *Builder) construct(path string, create bool) (*Logger, error) {
	size := b.size
	if size < MinSize {
		size = MinSize
	}
	var (
		r   *region.Region
		err error
	)
	if create {
		r, err = region.Create(path, size)
	} else {
		r, err = region.Open(path, size)
	}
	if err != nil {
		return nil, err
	}
	metrics := b.metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &Logger{
		region:  r,
		level:   b.level,
		sync:    b.sync,
		metrics: metrics,
	}, nil
}
