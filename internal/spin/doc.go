// Package spin provides the busy-wait lock serializing ring writes.
//
// # Overview
//
// The lock is one atomic flag. Acquisition loops on compare-and-swap;
// after a handful of failed attempts it yields to the Go scheduler so a
// contended writer cannot starve the goroutine holding the lock. There is
// no fairness and no timeout: a critical section here is a few memory
// copies, so contention windows are tiny.
//
// Unlocking an unlocked Lock panics. That only happens when guard
// discipline is broken, which is a bug to surface loudly, not an error
// to return.
package spin
