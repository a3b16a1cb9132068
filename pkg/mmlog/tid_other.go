//go:build !linux

package mmlog

import "os"

// threadID falls back to the process id on platforms without a cheap
// thread id syscall wrapper.
func threadID() int { return os.Getpid() }
