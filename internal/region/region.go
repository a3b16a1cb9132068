package region

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// HeaderSize is the width of the offset header at the start of the mapping.
const HeaderSize = 8

// ErrInvalidPath reports a path that cannot be represented as a
// NUL-terminated string for the open syscall.
var ErrInvalidPath = errors.New("path contains a NUL byte")

// Region is a read-write mapping of a log file. The first HeaderSize bytes
// hold the write offset; the rest is the payload ring.
type Region struct {
	data []byte
}

// Create opens path with create+truncate semantics, sizes it to hold
// capacity payload bytes, maps it, and resets the offset to zero.
func Create(path string, capacity int) (*Region, error) {
	r, err := open(path, capacity, unix.O_CREAT|unix.O_RDWR|unix.O_TRUNC)
	if err != nil {
		return nil, err
	}
	r.SetOffset(0)
	return r, nil
}

// Open maps an existing file without truncation, preserving its offset and
// payload content. The file is still sized to hold capacity payload bytes,
// so reopening with a different capacity than it was created with is not
// supported.
func Open(path string, capacity int) (*Region, error) {
	return open(path, capacity, unix.O_RDWR)
}

func open(path string, capacity int, flags int) (*Region, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	size := HeaderSize + capacity

	fd, err := unix.Open(path, flags, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("ftruncate %s: %w", path, err)
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	// The mapping keeps the pages alive; the descriptor is no longer needed.
	if err := unix.Close(fd); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("close %s: %w", path, err)
	}
	return &Region{data: data}, nil
}

// Cap returns the payload capacity in bytes.
func (r *Region) Cap() int { return len(r.data) - HeaderSize }

// Payload returns the mutable payload ring view.
func (r *Region) Payload() []byte { return r.data[HeaderSize:] }

// Offset returns the position within the payload ring where the next
// write begins. The header is native-endian: the file is only ever read
// back by the architecture that wrote it.
func (r *Region) Offset() uint64 {
	return binary.NativeEndian.Uint64(r.data[:HeaderSize])
}

// SetOffset persists a new write offset. An offset beyond the payload
// capacity means the ring arithmetic is broken, which is a bug in the
// caller, not a recoverable condition.
func (r *Region) SetOffset(n uint64) {
	if n > uint64(r.Cap()) {
		panic(fmt.Sprintf("region: offset %d exceeds capacity %d", n, r.Cap()))
	}
	binary.NativeEndian.PutUint64(r.data[:HeaderSize], n)
}

// Sync pushes the mapped pages to the backing file. When blocking is true
// the call returns only once the data is durably written; otherwise the
// writeback is merely scheduled.
func (r *Region) Sync(blocking bool) error {
	if r.data == nil {
		return nil
	}
	flags := unix.MS_ASYNC
	if blocking {
		flags = unix.MS_SYNC
	}
	if err := unix.Msync(r.data, flags); err != nil {
		return fmt.Errorf("msync: %w", err)
	}
	return nil
}

// Close unmaps the region. The Region must not be used afterwards.
func (r *Region) Close() error {
	if r.data == nil {
		return nil
	}
	data := r.data
	r.data = nil
	if err := unix.Munmap(data); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
