package mmlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSnapshotUnwrapped(t *testing.T) {
	l, path := newTestLogger(t, 1024, LevelInfo)
	l.write([]byte("first\n"))
	l.write([]byte("second\n"))
	require.NoError(t, l.Flush())

	snap, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(13), snap.Offset)
	assert.False(t, snap.Wrapped())
	assert.Equal(t, []byte("first\nsecond\n"), snap.Bytes())
	assert.Equal(t, []string{"first", "second"}, snap.Lines())
}

func TestReadSnapshotWrapped(t *testing.T) {
	const ringCap = 64
	l, path := newTestLogger(t, ringCap, LevelInfo)

	// Unaligned 11-byte record first, then five 16-byte records; the
	// fourth of those wraps and overwrites the first record in place.
	l.write([]byte("0123456789\n"))
	for i := 0; i < 5; i++ {
		l.write([]byte("record-" + strings.Repeat(string(rune('a'+i)), 8) + "\n"))
	}
	require.NoError(t, l.Flush())

	snap, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.True(t, snap.Wrapped())

	lines := snap.Lines()
	// Everything up to the first newline after the offset is dropped as a
	// potential torn record; every surviving line is complete.
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "record-"), "line %q", line)
		assert.Len(t, line, 15)
	}
	assert.Equal(t, "record-"+strings.Repeat("e", 8), lines[len(lines)-1])
}

func TestReadSnapshotEmpty(t *testing.T) {
	l, path := newTestLogger(t, 1024, LevelInfo)
	require.NoError(t, l.Flush())

	snap, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), snap.Offset)
	assert.False(t, snap.Wrapped())
	assert.Empty(t, snap.Lines())
}

func TestReadSnapshotMissingFile(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "missing.mmlog"))
	require.Error(t, err)
}

func TestReadSnapshotTruncatedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.mmlog")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o666))
	_, err := ReadSnapshot(path)
	require.Error(t, err)
}
