package gothread

import (
	"runtime"
	"time"
)

// Yield relinquishes the remainder of the caller's scheduling slice. There is
// no guarantee of when the caller resumes; under contention a yielding worker
// can starve indefinitely.
func Yield() {
	runtime.Gosched()
}

// Busy spins until d of wall-clock time has elapsed without sleeping or
// yielding. It models bounded busy-work performed while holding a lock in
// contention demonstrations.
func Busy(d time.Duration) {
	for start := time.Now(); time.Since(start) < d; {
	}
}
