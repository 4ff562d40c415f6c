package gothread

// ScopedThread is a Thread that joins itself on Close, so the handle cannot
// outlive its goroutine by accident. Pair construction with a deferred Close;
// deferred calls run last-in first-out, which tears several scoped handles
// down in the reverse order of their construction.
//
//	a := gothread.NewScopedThread(workA)
//	defer a.Close()
//	b := gothread.NewScopedThread(workB)
//	defer b.Close() // joins before a
type ScopedThread struct {
	t *Thread
}

// NewScopedThread spawns fn like NewThread and wraps the handle for
// join-on-Close cleanup.
func NewScopedThread(fn func(), opts ...Option) *ScopedThread {
	return &ScopedThread{t: NewThread(fn, opts...)}
}

// Thread returns the underlying handle for queries and explicit lifecycle
// control. Joining or detaching it early makes Close a no-op.
func (s *ScopedThread) Thread() *Thread {
	return s.t
}

// Close blocks until the owned goroutine finishes, if the handle still owns
// one. Idempotent: closing an already joined, detached, or moved-from handle
// returns nil. Implements io.Closer.
func (s *ScopedThread) Close() error {
	if err := s.t.Join(); err != nil && err != ErrNotJoinable {
		return err
	}
	return nil
}
