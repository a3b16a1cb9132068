package spin

import (
	"runtime"
	"sync/atomic"
)

// spinAttempts is how many failed CAS rounds to burn before yielding.
const spinAttempts = 64

// Lock is a spin lock. The zero value is unlocked and ready to use.
// It must not be copied after first use.
type Lock struct {
	flag atomic.Bool
}

// Lock busy-waits until it acquires exclusivity.
func (l *Lock) Lock() {
	for i := 0; ; i++ {
		if l.flag.CompareAndSwap(false, true) {
			return
		}
		if i%spinAttempts == spinAttempts-1 {
			runtime.Gosched()
		}
	}
}

// Unlock releases the lock. Releasing a lock that is not held indicates
// corrupted guard state and panics.
func (l *Lock) Unlock() {
	if !l.flag.CompareAndSwap(true, false) {
		panic("spin: unlock of unlocked Lock")
	}
}
