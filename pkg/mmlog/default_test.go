package mmlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLifecycle(t *testing.T) {
	require.Nil(t, Default())
	require.NoError(t, CloseDefault()) // no-op when unset

	l, err := NewBuilder().Build(filepath.Join(t.TempDir(), "default.mmlog"))
	require.NoError(t, err)

	require.NoError(t, SetDefault(l))
	require.Same(t, l, Default())

	// Initialization is once-only until an explicit teardown.
	other, err := NewBuilder().Build(filepath.Join(t.TempDir(), "other.mmlog"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = other.Close() })
	require.ErrorIs(t, SetDefault(other), ErrAlreadyInitialized)
	require.Same(t, l, Default())

	require.NoError(t, CloseDefault())
	require.Nil(t, Default())

	// After teardown a new default may be installed.
	require.NoError(t, SetDefault(other))
	require.NoError(t, CloseDefault())
}
