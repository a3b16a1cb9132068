//go:build linux

package mmlog

import "golang.org/x/sys/unix"

// threadID returns the kernel thread id of the calling goroutine's
// current OS thread. Goroutines migrate between threads, so the id
// identifies the thread that performed the write, not the goroutine.
func threadID() int { return unix.Gettid() }
