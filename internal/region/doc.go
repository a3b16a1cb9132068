// Package region owns the memory-mapped file backing a log ring.
//
// # Overview
//
// A region is a single contiguous mapping of a regular file:
//   - bytes [0, 8):        write offset header, one native-endian uint64
//   - bytes [8, 8+cap):    payload ring
//
// The file is sized once at open time and never resized for the life of
// the mapping. Two construction modes exist: Create truncates the file
// and resets the offset to zero, Open preserves whatever offset and
// payload bytes are already on disk so logging resumes across process
// restarts.
//
// The region performs no locking of its own; callers serialize access to
// the offset and payload. The mapping is shared (MAP_SHARED), so stores
// reach the page cache directly and Sync pushes them to stable storage.
package region
