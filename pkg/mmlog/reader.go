package mmlog

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/ClarkGuan/mmlog/internal/region"
)

// Snapshot is a point-in-time copy of a log file's header and payload,
// read through ordinary file I/O rather than a mapping. A snapshot taken
// while a writer is live may contain one torn record.
type Snapshot struct {
	// Offset is the ring position where the next write would begin.
	Offset uint64
	// Payload is the raw ring content, not yet unrolled.
	Payload []byte
}

// ReadSnapshot reads the log file at path.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < region.HeaderSize {
		return nil, fmt.Errorf("read %s: file shorter than header (%d bytes)", path, len(data))
	}
	off := binary.NativeEndian.Uint64(data[:region.HeaderSize])
	payload := data[region.HeaderSize:]
	if off > uint64(len(payload)) {
		return nil, fmt.Errorf("read %s: offset %d exceeds capacity %d", path, off, len(payload))
	}
	return &Snapshot{Offset: off, Payload: payload}, nil
}

// Wrapped reports whether the ring has been written past its end at
// least once. Detection is heuristic: a ring that never wrapped still
// holds the zero bytes the file was created with after the offset.
func (s *Snapshot) Wrapped() bool {
	tail := s.Payload[s.Offset:]
	for _, b := range tail {
		if b != 0 {
			return true
		}
	}
	return false
}

// Bytes returns the payload unrolled oldest-first. For a wrapped ring
// that is the tail segment [offset, cap) followed by [0, offset); the
// leading bytes are the remains of a partially overwritten record.
func (s *Snapshot) Bytes() []byte {
	if !s.Wrapped() {
		return append([]byte(nil), s.Payload[:s.Offset]...)
	}
	out := make([]byte, 0, len(s.Payload))
	out = append(out, s.Payload[s.Offset:]...)
	return append(out, s.Payload[:s.Offset]...)
}

// Lines returns the complete records oldest-first. On a wrapped ring the
// torn leading record (everything before the first newline of the tail
// segment) is discarded.
func (s *Snapshot) Lines() []string {
	data := s.Bytes()
	if s.Wrapped() {
		nl := bytes.IndexByte(data, '\n')
		if nl < 0 {
			return nil
		}
		data = data[nl+1:]
	}
	var lines []string
	for len(data) > 0 {
		nl := bytes.IndexByte(data, '\n')
		if nl < 0 {
			// trailing partial record, currently being overwritten
			break
		}
		lines = append(lines, string(data[:nl]))
		data = data[nl+1:]
	}
	return lines
}
