package region

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestRegion(t *testing.T, capacity int) (*Region, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mmlog")
	r, err := Create(path, capacity)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r, path
}

func TestCreateSizesFile(t *testing.T) {
	_, path := newTestRegion(t, 4096)
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() != HeaderSize+4096 {
		t.Fatalf("file size = %d, want %d", fi.Size(), HeaderSize+4096)
	}
}

func TestCreateResetsOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mmlog")
	r, err := Create(path, 1024)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	r.SetOffset(100)
	copy(r.Payload(), []byte("stale content"))
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Create again on the same path: truncate semantics discard everything.
	r2, err := Create(path, 1024)
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	t.Cleanup(func() { _ = r2.Close() })
	if got := r2.Offset(); got != 0 {
		t.Fatalf("offset after recreate = %d, want 0", got)
	}
	if r2.Payload()[0] != 0 {
		t.Fatalf("payload not zeroed after recreate")
	}
}

func TestOpenPreservesState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mmlog")
	r, err := Create(path, 1024)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	copy(r.Payload(), []byte("hello"))
	r.SetOffset(5)
	if err := r.Sync(true); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	r2, err := Open(path, 1024)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = r2.Close() })
	if got := r2.Offset(); got != 5 {
		t.Fatalf("offset after reopen = %d, want 5", got)
	}
	if got := string(r2.Payload()[:5]); got != "hello" {
		t.Fatalf("payload after reopen = %q, want %q", got, "hello")
	}
}

func TestInvalidPath(t *testing.T) {
	_, err := Create("bad\x00path", 1024)
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("err = %v, want ErrInvalidPath", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mmlog"), 1024)
	if err == nil {
		t.Fatalf("expected error opening missing file")
	}
}

func TestSetOffsetBoundsPanic(t *testing.T) {
	r, _ := newTestRegion(t, 1024)
	r.SetOffset(1024) // offset == capacity is legal
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for offset beyond capacity")
		}
	}()
	r.SetOffset(1025)
}

func TestCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mmlog")
	r, err := Create(path, 1024)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
